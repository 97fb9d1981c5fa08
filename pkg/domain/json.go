package domain

import (
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// Encode writes a as a JSON object.
func (a *Analysis) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(a.ID.String())
	e.FieldStart("score")
	e.Float64(a.Score)
	e.FieldStart("matched")
	encodeSkills(e, a.Matched)
	e.FieldStart("missing")
	encodeSkills(e, a.Missing)
	e.FieldStart("resumeSkills")
	encodeSkills(e, a.ResumeSkills)
	e.FieldStart("jobSkills")
	encodeSkills(e, a.JobSkills)
	e.FieldStart("jobFallbackUsed")
	e.Bool(a.JobFallbackUsed)
	e.FieldStart("threshold")
	e.Int(a.Threshold)
	e.ObjEnd()
}

// Decode reads a from a JSON object. Unknown fields are skipped.
func (a *Analysis) Decode(d *jx.Decoder) error {
	if a == nil {
		return errors.New("invalid: unable to decode Analysis to nil")
	}

	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "id":
			var s string
			if s, err = d.Str(); err != nil {
				break
			}
			var id uuid.UUID
			if id, err = uuid.Parse(s); err == nil {
				a.ID = AnalysisID(id)
			}
		case "score":
			a.Score, err = d.Float64()
		case "matched":
			a.Matched, err = decodeSkills(d)
		case "missing":
			a.Missing, err = decodeSkills(d)
		case "resumeSkills":
			a.ResumeSkills, err = decodeSkills(d)
		case "jobSkills":
			a.JobSkills, err = decodeSkills(d)
		case "jobFallbackUsed":
			a.JobFallbackUsed, err = d.Bool()
		case "threshold":
			a.Threshold, err = d.Int()
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
}

// MarshalJSON implements json.Marshaler.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	a.Encode(e)

	return slices.Clone(e.Bytes()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Analysis) UnmarshalJSON(data []byte) error {
	return a.Decode(jx.DecodeBytes(data))
}

func encodeSkills(e *jx.Encoder, skills []Skill) {
	e.ArrStart()
	for _, s := range skills {
		e.Str(s)
	}
	e.ArrEnd()
}

func decodeSkills(d *jx.Decoder) ([]Skill, error) {
	out := []Skill{}
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode skills")
	}

	return out, nil
}
