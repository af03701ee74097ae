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

package model

import "time"

// Source identifies the business system a record originates from.
type Source string

const (
	// SourceInvoicing is the authoritative source; its records seed the
	// profile set and are processed first.
	SourceInvoicing Source = "invoicing"
	SourceCalendar  Source = "calendar"
	SourceEmail     Source = "email"
)

// RawRecord is the closed union of per-source record shapes. Each source
// carries only the fields that are legal for it; the unexported method keeps
// the union sealed to this package.
type RawRecord interface {
	Source() Source
	Timestamp() time.Time

	rawRecord()
}

// InvoiceRecord is a customer contact row from the invoicing ledger.
type InvoiceRecord struct {
	InvoiceID    string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Company      string
	EntryDate    time.Time
}

// BookingRecord is a calendar event describing a booked service. The free-text
// Description carries the service details and often the service address.
type BookingRecord struct {
	EventID     string
	Title       string
	Name        string
	Email       string
	Phone       string
	Location    string
	Description string
	StartTime   time.Time
}

// EmailRecord is a correspondence thread from the inbox. Contact fields are
// best effort, extracted from the thread body by the source loader.
type EmailRecord struct {
	ThreadID string
	Name     string
	Email    string
	Phone    string
	Address  string
	Subject  string
	Snippet  string
	Date     time.Time
}

func (r InvoiceRecord) Source() Source { return SourceInvoicing }
func (r BookingRecord) Source() Source { return SourceCalendar }
func (r EmailRecord) Source() Source   { return SourceEmail }

func (r InvoiceRecord) Timestamp() time.Time { return r.EntryDate }
func (r BookingRecord) Timestamp() time.Time { return r.StartTime }
func (r EmailRecord) Timestamp() time.Time   { return r.Date }

func (r InvoiceRecord) rawRecord() {}
func (r BookingRecord) rawRecord() {}
func (r EmailRecord) rawRecord()   {}
