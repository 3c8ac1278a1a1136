package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"MBBS", "MD", "DM Cardiology"}

	v, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out, "element order must survive the round trip")
}

func TestStringListNilValue(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListScanBytes(t *testing.T) {
	var out StringList
	require.NoError(t, out.Scan([]byte(`["Blood Test","Imaging"]`)))
	assert.Equal(t, StringList{"Blood Test", "Imaging"}, out)
}

func TestStringListScanNull(t *testing.T) {
	var out StringList
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestFAQListRoundTrip(t *testing.T) {
	in := FAQList{
		{Question: "Do I need to fast?", Answer: "Yes, 8 hours."},
		{Question: "Is a referral required?", Answer: "No."},
	}

	v, err := in.Value()
	require.NoError(t, err)

	var out FAQList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestOptionalDistinguishesNullFromOmitted(t *testing.T) {
	type payload struct {
		Discount Optional[float64] `json:"discount"`
	}

	var omitted payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.False(t, omitted.Discount.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"discount":null}`), &null))
	assert.True(t, null.Discount.Set)
	assert.Nil(t, null.Discount.Value)

	var present payload
	require.NoError(t, json.Unmarshal([]byte(`{"discount":1499.5}`), &present))
	assert.True(t, present.Discount.Set)
	require.NotNil(t, present.Discount.Value)
	assert.Equal(t, 1499.5, *present.Discount.Value)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, DoctorAvailable.Valid())
	assert.True(t, DoctorOnLeave.Valid())
	assert.False(t, DoctorAvailability("retired").Valid())

	assert.True(t, AppointmentPending.Valid())
	assert.False(t, AppointmentStatus("rescheduled").Valid())

	assert.True(t, ContactMobile.Valid())
	assert.False(t, ContactType("fax").Valid())
}
