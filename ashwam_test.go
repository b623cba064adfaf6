package ashwam

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validObject() SemanticObject {
	return SemanticObject{
		Domain:          DomainSymptom,
		EvidenceSpan:    "sharp pain in my chest",
		Polarity:        PolarityPresent,
		IntensityBucket: BucketHigh,
		ArousalBucket:   BucketUnknown,
		TimeBucket:      TimeToday,
	}
}

func TestEnumValidity(t *testing.T) {
	for _, d := range []Domain{DomainSymptom, DomainFood, DomainEmotion, DomainMind} {
		assert.True(t, d.Valid(), "domain %q should be valid", d)
	}
	assert.False(t, Domain("mood").Valid())
	assert.False(t, Domain("").Valid())

	for _, p := range []Polarity{PolarityPresent, PolarityAbsent, PolarityUncertain} {
		assert.True(t, p.Valid(), "polarity %q should be valid", p)
	}
	assert.False(t, Polarity("negative").Valid())

	for _, b := range []Bucket{BucketLow, BucketMedium, BucketHigh, BucketUnknown} {
		assert.True(t, b.Valid(), "bucket %q should be valid", b)
	}
	assert.False(t, Bucket("extreme").Valid())

	for _, tb := range []TimeBucket{TimeToday, TimeLastNight, TimePastWeek, TimeUnknown} {
		assert.True(t, tb.Valid(), "time bucket %q should be valid", tb)
	}
	assert.False(t, TimeBucket("yesterday").Valid())
}

func TestParseConstructors(t *testing.T) {
	d, err := ParseDomain("emotion")
	require.NoError(t, err)
	assert.Equal(t, DomainEmotion, d)

	_, err = ParseDomain("mood")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)

	_, err = ParsePolarity("maybe")
	assert.ErrorIs(t, err, ErrSchemaViolation)

	b, err := ParseBucket("arousal_bucket", "high")
	require.NoError(t, err)
	assert.Equal(t, BucketHigh, b)

	_, err = ParseTimeBucket("yesterday")
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestValidateAcceptsWellFormedObject(t *testing.T) {
	require.Nil(t, validObject().Validate())
}

func TestValidateRejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SemanticObject)
		field  string
	}{
		{"bad domain", func(o *SemanticObject) { o.Domain = "mood" }, "domain"},
		{"missing domain", func(o *SemanticObject) { o.Domain = "" }, "domain"},
		{"bad polarity", func(o *SemanticObject) { o.Polarity = "negated" }, "polarity"},
		{"bad intensity", func(o *SemanticObject) { o.IntensityBucket = "extreme" }, "intensity_bucket"},
		{"bad arousal", func(o *SemanticObject) { o.ArousalBucket = "wild" }, "arousal_bucket"},
		{"bad time", func(o *SemanticObject) { o.TimeBucket = "yesterday" }, "time_bucket"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obj := validObject()
			tc.mutate(&obj)
			serr := obj.Validate()
			require.NotNil(t, serr)
			assert.Equal(t, tc.field, serr.Field)
			assert.ErrorIs(t, serr, ErrSchemaViolation)
		})
	}
}

func TestValidateRejectsEmptyEvidenceSpan(t *testing.T) {
	for _, span := range []string{"", "   ", "\t\n"} {
		obj := validObject()
		obj.EvidenceSpan = span
		serr := obj.Validate()
		require.NotNil(t, serr, "span %q should be rejected", span)
		assert.Equal(t, "evidence_span", serr.Field)
		assert.ErrorIs(t, serr, ErrEmptyEvidenceSpan)
		// An empty span is still a schema violation.
		assert.ErrorIs(t, serr, ErrSchemaViolation)
	}
}

func TestSchemaErrorNamesLocation(t *testing.T) {
	obj := validObject()
	obj.Domain = "mood"
	serr := obj.Validate()
	require.NotNil(t, serr)
	serr.EntryID = "j001"
	serr.List = "predicted"
	serr.Index = 2

	msg := serr.Error()
	assert.Contains(t, msg, "j001")
	assert.Contains(t, msg, "predicted[2]")
	assert.Contains(t, msg, "domain")
	assert.Contains(t, msg, "mood")

	var target *SchemaError
	assert.True(t, errors.As(error(serr), &target))
}

func TestScopedBucket(t *testing.T) {
	obj := validObject()
	assert.Equal(t, BucketHigh, obj.ScopedBucket())

	obj.Domain = DomainEmotion
	obj.ArousalBucket = BucketLow
	assert.Equal(t, BucketLow, obj.ScopedBucket())

	for _, d := range []Domain{DomainFood, DomainMind} {
		obj.Domain = d
		assert.Equal(t, obj.IntensityBucket, obj.ScopedBucket())
	}
}

func TestSemanticObjectWireShape(t *testing.T) {
	data, err := json.Marshal(validObject())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"domain", "evidence_span", "polarity", "intensity_bucket", "arousal_bucket", "time_bucket"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "unknown", m["arousal_bucket"], "inapplicable buckets still carry unknown")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.5, cfg.JaccardThreshold)
	assert.True(t, cfg.StripPunctuation)
	require.NoError(t, cfg.Validate())

	cfg.JaccardThreshold = 1.5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	cfg.JaccardThreshold = -0.1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
