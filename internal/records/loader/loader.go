/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package loader reads the exported JSON files of the three business systems
// into raw records. Only the file envelope is validated; records missing
// identity fields are kept as-is, because every input record must reach the
// pipeline regardless of quality.
package loader

import (
	"encoding/json"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"

	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
	"github.com/wso2/customer-resolution-service/internal/system/errors"
)

var validate = validator.New()

type invoiceFile struct {
	Source  string             `json:"source" validate:"required,eq=invoicing"`
	Records []invoiceRecordDTO `json:"records"`
}

type invoiceRecordDTO struct {
	InvoiceID    string `json:"invoice_id"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Company      string `json:"company"`
	EntryDate    string `json:"entry_date"`
}

type bookingFile struct {
	Source  string             `json:"source" validate:"required,eq=calendar"`
	Records []bookingRecordDTO `json:"records"`
}

type bookingRecordDTO struct {
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
}

type emailFile struct {
	Source  string           `json:"source" validate:"required,eq=email"`
	Records []emailRecordDTO `json:"records"`
}

type emailRecordDTO struct {
	ThreadID string `json:"thread_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Subject  string `json:"subject"`
	Snippet  string `json:"snippet"`
	Date     string `json:"date"`
}

// LoadInvoices reads the invoicing ledger export.
func LoadInvoices(path string) ([]recordmodel.RawRecord, error) {
	var file invoiceFile
	if err := readSourceFile(path, &file); err != nil {
		return nil, err
	}

	records := make([]recordmodel.RawRecord, 0, len(file.Records))
	for _, dto := range file.Records {
		records = append(records, recordmodel.InvoiceRecord{
			InvoiceID:    dto.InvoiceID,
			ContactName:  dto.ContactName,
			ContactEmail: dto.ContactEmail,
			ContactPhone: dto.ContactPhone,
			Company:      dto.Company,
			EntryDate:    parseTimestamp(dto.EntryDate),
		})
	}
	return records, nil
}

// LoadBookings reads the booking calendar export.
func LoadBookings(path string) ([]recordmodel.RawRecord, error) {
	var file bookingFile
	if err := readSourceFile(path, &file); err != nil {
		return nil, err
	}

	records := make([]recordmodel.RawRecord, 0, len(file.Records))
	for _, dto := range file.Records {
		records = append(records, recordmodel.BookingRecord{
			EventID:     dto.EventID,
			Title:       dto.Title,
			Name:        dto.Name,
			Email:       dto.Email,
			Phone:       dto.Phone,
			Location:    dto.Location,
			Description: dto.Description,
			StartTime:   parseTimestamp(dto.StartTime),
		})
	}
	return records, nil
}

// LoadEmails reads the inbox export. Contact fields missing from the export
// are recovered from the labelled lines leads carry in their bodies.
func LoadEmails(path string) ([]recordmodel.RawRecord, error) {
	var file emailFile
	if err := readSourceFile(path, &file); err != nil {
		return nil, err
	}

	records := make([]recordmodel.RawRecord, 0, len(file.Records))
	for _, dto := range file.Records {
		rec := recordmodel.EmailRecord{
			ThreadID: dto.ThreadID,
			Name:     dto.Name,
			Email:    dto.Email,
			Phone:    dto.Phone,
			Address:  dto.Address,
			Subject:  dto.Subject,
			Snippet:  dto.Snippet,
			Date:     parseTimestamp(dto.Date),
		}
		fillFromBody(&rec)
		records = append(records, rec)
	}
	return records, nil
}

func readSourceFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewServerError(errors.ErrReadSourceFile,
			pkgerrors.Wrapf(err, "reading source file %s", path))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewServerError(errors.ErrUnmarshalSourceFile,
			pkgerrors.Wrapf(err, "parsing source file %s", path))
	}
	if err := validate.Struct(out); err != nil {
		return envelopeError(err)
	}
	return nil
}

// envelopeError distinguishes a present-but-wrong source tag from an envelope
// that is missing fields altogether.
func envelopeError(err error) error {
	var fieldErrs validator.ValidationErrors
	if pkgerrors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Field() == "Source" && fieldErr.Tag() == "eq" {
				return errors.NewClientError(errors.ErrUnknownSourceTag)
			}
		}
	}
	return errors.NewClientError(errors.ErrInvalidSourceEnvelope)
}

// parseTimestamp is lenient: an absent or malformed timestamp degrades to the
// zero time instead of rejecting the record.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}
