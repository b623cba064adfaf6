// Package ashwam defines the data model for evaluating machine-produced
// semantic extractions against human gold annotations of free-text journal
// entries. The scoring engine itself lives in the eval subpackage; this
// package holds the closed field vocabularies, the SemanticObject wire shape,
// and construction-time validation.
package ashwam

import "strings"

// Domain is the extraction category of a semantic object.
type Domain string

const (
	DomainSymptom Domain = "symptom"
	DomainFood    Domain = "food"
	DomainEmotion Domain = "emotion"
	DomainMind    Domain = "mind"
)

// Valid reports whether d is one of the closed domain values.
func (d Domain) Valid() bool {
	switch d {
	case DomainSymptom, DomainFood, DomainEmotion, DomainMind:
		return true
	}
	return false
}

// ParseDomain converts a raw string into a Domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", &SchemaError{Field: "domain", Value: s, cause: ErrSchemaViolation}
	}
	return d, nil
}

// Polarity records whether the extracted observation is asserted, negated,
// or hedged in the source text.
type Polarity string

const (
	PolarityPresent   Polarity = "present"
	PolarityAbsent    Polarity = "absent"
	PolarityUncertain Polarity = "uncertain"
)

// Valid reports whether p is one of the closed polarity values.
func (p Polarity) Valid() bool {
	switch p {
	case PolarityPresent, PolarityAbsent, PolarityUncertain:
		return true
	}
	return false
}

// ParsePolarity converts a raw string into a Polarity.
func ParsePolarity(s string) (Polarity, error) {
	p := Polarity(s)
	if !p.Valid() {
		return "", &SchemaError{Field: "polarity", Value: s, cause: ErrSchemaViolation}
	}
	return p, nil
}

// Bucket is a coarse ordinal level shared by the intensity and arousal
// fields. Objects whose domain makes a bucket inapplicable still carry
// BucketUnknown so that comparisons stay total.
type Bucket string

const (
	BucketLow     Bucket = "low"
	BucketMedium  Bucket = "medium"
	BucketHigh    Bucket = "high"
	BucketUnknown Bucket = "unknown"
)

// Valid reports whether b is one of the closed bucket values.
func (b Bucket) Valid() bool {
	switch b {
	case BucketLow, BucketMedium, BucketHigh, BucketUnknown:
		return true
	}
	return false
}

// ParseBucket converts a raw string into a Bucket. The field name is used
// for error reporting since intensity and arousal share the vocabulary.
func ParseBucket(field, s string) (Bucket, error) {
	b := Bucket(s)
	if !b.Valid() {
		return "", &SchemaError{Field: field, Value: s, cause: ErrSchemaViolation}
	}
	return b, nil
}

// TimeBucket anchors the observation on a coarse timeline relative to the
// journal entry.
type TimeBucket string

const (
	TimeToday     TimeBucket = "today"
	TimeLastNight TimeBucket = "last_night"
	TimePastWeek  TimeBucket = "past_week"
	TimeUnknown   TimeBucket = "unknown"
)

// Valid reports whether t is one of the closed time-bucket values.
func (t TimeBucket) Valid() bool {
	switch t {
	case TimeToday, TimeLastNight, TimePastWeek, TimeUnknown:
		return true
	}
	return false
}

// ParseTimeBucket converts a raw string into a TimeBucket.
func ParseTimeBucket(s string) (TimeBucket, error) {
	t := TimeBucket(s)
	if !t.Valid() {
		return "", &SchemaError{Field: "time_bucket", Value: s, cause: ErrSchemaViolation}
	}
	return t, nil
}

// SemanticObject is a single structured extraction, either predicted by a
// model or annotated by a human. All six fields are required on the wire;
// bucket fields that are not meaningful for the object's domain carry
// "unknown" rather than being omitted.
type SemanticObject struct {
	Domain          Domain     `json:"domain"`
	EvidenceSpan    string     `json:"evidence_span"`
	Polarity        Polarity   `json:"polarity"`
	IntensityBucket Bucket     `json:"intensity_bucket"`
	ArousalBucket   Bucket     `json:"arousal_bucket"`
	TimeBucket      TimeBucket `json:"time_bucket"`
}

// Validate checks every field against its closed vocabulary and rejects
// empty or whitespace-only evidence spans. The returned SchemaError names
// the offending field; callers attach entry and index context.
func (o SemanticObject) Validate() *SchemaError {
	if !o.Domain.Valid() {
		return &SchemaError{Field: "domain", Value: string(o.Domain), cause: ErrSchemaViolation}
	}
	if strings.TrimSpace(o.EvidenceSpan) == "" {
		return &SchemaError{Field: "evidence_span", Value: o.EvidenceSpan, cause: ErrEmptyEvidenceSpan}
	}
	if !o.Polarity.Valid() {
		return &SchemaError{Field: "polarity", Value: string(o.Polarity), cause: ErrSchemaViolation}
	}
	if !o.IntensityBucket.Valid() {
		return &SchemaError{Field: "intensity_bucket", Value: string(o.IntensityBucket), cause: ErrSchemaViolation}
	}
	if !o.ArousalBucket.Valid() {
		return &SchemaError{Field: "arousal_bucket", Value: string(o.ArousalBucket), cause: ErrSchemaViolation}
	}
	if !o.TimeBucket.Valid() {
		return &SchemaError{Field: "time_bucket", Value: string(o.TimeBucket), cause: ErrSchemaViolation}
	}
	return nil
}

// ScopedBucket returns the bucket value that is semantically meaningful for
// the object's domain: arousal for emotion objects, intensity otherwise.
func (o SemanticObject) ScopedBucket() Bucket {
	if o.Domain == DomainEmotion {
		return o.ArousalBucket
	}
	return o.IntensityBucket
}

// JournalEntry is one independent unit of evaluation: the raw journal text
// plus the gold and predicted extractions for it. Entries share no state.
type JournalEntry struct {
	ID        string           `json:"entry_id"`
	Text      string           `json:"text"`
	Gold      []SemanticObject `json:"gold"`
	Predicted []SemanticObject `json:"predicted"`
}
