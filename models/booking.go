package models

import (
	"encoding/json"
	"time"
)

// Booking statuses observed in the Bookla vocabulary. Upstream may emit
// values outside this set; they pass through untouched.
const (
	BookingStatusScheduled = "scheduled"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is one entry from the Bookla bookings list. Only the fields this
// service reads are typed; every other field is carried through verbatim so
// the proxy never drops or invents upstream data.
type Booking struct {
	ID           string
	Status       string
	StartTime    string
	ServiceID    string
	ResourceID   string
	ServiceName  string
	ResourceName string

	extra map[string]json.RawMessage
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	popString(fields, "id", &b.ID)
	popString(fields, "status", &b.Status)
	popString(fields, "startTime", &b.StartTime)
	popString(fields, "serviceID", &b.ServiceID)
	popString(fields, "resourceID", &b.ResourceID)
	popString(fields, "serviceName", &b.ServiceName)
	popString(fields, "resourceName", &b.ResourceName)

	b.extra = fields
	return nil
}

func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.extra)+7)
	for k, v := range b.extra {
		out[k] = v
	}
	putString(out, "id", b.ID)
	putString(out, "status", b.Status)
	putString(out, "startTime", b.StartTime)
	putString(out, "serviceID", b.ServiceID)
	putString(out, "resourceID", b.ResourceID)

	// Label fields are always present on the wire, null when unknown.
	out["serviceName"] = nullable(b.ServiceName)
	out["resourceName"] = nullable(b.ResourceName)

	return json.Marshal(out)
}

// StartsAt parses the booking's start time. Unparseable or absent values
// yield the zero time.
func (b Booking) StartsAt() time.Time {
	t, err := time.Parse(time.RFC3339, b.StartTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Enrich fills in serviceName/resourceName from the given label maps. It is
// strictly additive: values already set on the booking are never replaced.
func (b *Booking) Enrich(services, resources map[string]string) {
	if b.ServiceName == "" && b.ServiceID != "" {
		b.ServiceName = services[b.ServiceID]
	}
	if b.ResourceName == "" && b.ResourceID != "" {
		b.ResourceName = resources[b.ResourceID]
	}
}

// popString extracts key from fields into dst when it decodes as a string
// (or null). Values of any other shape stay in fields so they round-trip.
func popString(fields map[string]json.RawMessage, key string, dst *string) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return
	}
	delete(fields, key)
	if s != nil {
		*dst = *s
	}
}

func putString(out map[string]any, key, val string) {
	if val != "" {
		out[key] = val
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
