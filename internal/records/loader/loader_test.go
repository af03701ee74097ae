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

package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordmodel "github.com/wso2/customer-resolution-service/internal/records/model"
	"github.com/wso2/customer-resolution-service/internal/system/errors"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadInvoices(t *testing.T) {
	path := writeTempFile(t, `{
		"source": "invoicing",
		"records": [
			{
				"invoice_id": "INV-001",
				"contact_name": "Anna Hansen",
				"contact_email": "anna@example.dk",
				"contact_phone": "12 34 56 78",
				"company": "Hansen ApS",
				"entry_date": "2026-03-01"
			}
		]
	}`)

	records, err := LoadInvoices(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	invoice, ok := records[0].(recordmodel.InvoiceRecord)
	require.True(t, ok)
	assert.Equal(t, "INV-001", invoice.InvoiceID)
	assert.Equal(t, "Anna Hansen", invoice.ContactName)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), invoice.EntryDate)
	assert.Equal(t, recordmodel.SourceInvoicing, invoice.Source())
}

func TestLoadBookings(t *testing.T) {
	path := writeTempFile(t, `{
		"source": "calendar",
		"records": [
			{
				"event_id": "EV-1",
				"title": "Rengøring hos Anna",
				"name": "Anna Hansen",
				"location": "Nørrebrogade 123",
				"description": "Flytterengøring 120 m²",
				"start_time": "2026-04-02T09:00:00Z"
			}
		]
	}`)

	records, err := LoadBookings(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	booking, ok := records[0].(recordmodel.BookingRecord)
	require.True(t, ok)
	assert.Equal(t, "EV-1", booking.EventID)
	assert.Equal(t, time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC), booking.StartTime)
	assert.Equal(t, recordmodel.SourceCalendar, booking.Source())
}

func TestLoadEmails_FillsContactFromBody(t *testing.T) {
	path := writeTempFile(t, `{
		"source": "email",
		"records": [
			{
				"thread_id": "TH-1",
				"subject": "Tilbud på rengøring",
				"snippet": "Navn: Else Kjær\nAdresse: Vestergade 4, 8000 Aarhus\nTlf: 12 34 56 78\nE-mail: else@example.dk",
				"date": "2026-02-10T12:00:00Z"
			}
		]
	}`)

	records, err := LoadEmails(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	email, ok := records[0].(recordmodel.EmailRecord)
	require.True(t, ok)
	assert.Equal(t, "Else Kjær", email.Name)
	assert.Equal(t, "else@example.dk", email.Email)
	assert.Equal(t, "12 34 56 78", email.Phone)
	assert.Equal(t, "Vestergade 4, 8000 Aarhus", email.Address)
}

func TestLoadEmails_HeaderFieldsWin(t *testing.T) {
	path := writeTempFile(t, `{
		"source": "email",
		"records": [
			{
				"thread_id": "TH-2",
				"name": "Bo Jensen",
				"email": "bo@example.dk",
				"snippet": "Navn: Anden Person\nE-mail: other@example.dk"
			}
		]
	}`)

	records, err := LoadEmails(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	email := records[0].(recordmodel.EmailRecord)
	assert.Equal(t, "Bo Jensen", email.Name)
	assert.Equal(t, "bo@example.dk", email.Email)
}

func TestLoad_WrongSourceTag(t *testing.T) {
	path := writeTempFile(t, `{"source": "calendar", "records": []}`)

	_, err := LoadInvoices(path)
	require.Error(t, err)
	var clientErr *errors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors.ErrUnknownSourceTag.Code, clientErr.Code)
}

func TestLoad_MissingSourceTag(t *testing.T) {
	path := writeTempFile(t, `{"records": []}`)

	_, err := LoadInvoices(path)
	require.Error(t, err)
	var clientErr *errors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, errors.ErrInvalidSourceEnvelope.Code, clientErr.Code)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := LoadInvoices(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var serverErr *errors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors.ErrReadSourceFile.Code, serverErr.Code)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, `{"source": "invoicing", "records": [`)

	_, err := LoadInvoices(path)
	require.Error(t, err)
	var serverErr *errors.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors.ErrUnmarshalSourceFile.Code, serverErr.Code)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2026-01-15T08:30:00Z", time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"date only", "2026-01-15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "next tuesday", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTimestamp(tt.raw))
		})
	}
}
