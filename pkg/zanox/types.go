package zanox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Count is an integer the API renders as a number or a numeric string.
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	value, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("decoding count: %w", err)
	}

	*c = Count(int(value))

	return nil
}

// Flag is a boolean the API renders as a JSON boolean or as "true"/"false".
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if text == "" || text == "null" {
		*f = false

		return nil
	}

	value, err := strconv.ParseBool(text)
	if err != nil {
		return fmt.Errorf("%w: %q is not a boolean", ErrUnexpectedShape, text)
	}

	*f = Flag(value)

	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a point in time as rendered by the API.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses any of the layouts the API emits.
func ParseTimestamp(value string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return Timestamp{Time: parsed}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q is not a timestamp", ErrUnexpectedShape, value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string

	err := json.Unmarshal(data, &value)
	if err != nil {
		return fmt.Errorf("decoding timestamp: %w", err)
	}

	if value == "" {
		*t = Timestamp{}

		return nil
	}

	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.Format(time.RFC3339), nil
}

// String returns the RFC 3339 form.
func (t Timestamp) String() string {
	return t.Format(time.RFC3339)
}

// Regions holds the region codes of a program, ad space or incentive.
// The API nests them as [{"region": "DE"}] or [{"region": ["DE", "AT"]}].
type Regions []string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Regions) UnmarshalJSON(data []byte) error {
	regions, err := decodeNested[string](data, "region")
	if err != nil {
		return fmt.Errorf("decoding regions: %w", err)
	}

	*r = regions

	return nil
}

// Categories is a category list nested as [{"category": ...}].
type Categories []Category

// UnmarshalJSON implements json.Unmarshaler.
func (c *Categories) UnmarshalJSON(data []byte) error {
	categories, err := decodeNested[Category](data, "category")
	if err != nil {
		return err
	}

	*c = categories

	return nil
}

// Policies is a policy list nested as {"policy": ...}.
type Policies []Policy

// UnmarshalJSON implements json.Unmarshaler.
func (p *Policies) UnmarshalJSON(data []byte) error {
	policies, err := decodeNested[Policy](data, "policy")
	if err != nil {
		return err
	}

	*p = policies

	return nil
}

// TrackingLinks is a tracking link list nested as {"trackingLink": ...}.
type TrackingLinks []TrackingLink

// UnmarshalJSON implements json.Unmarshaler.
func (t *TrackingLinks) UnmarshalJSON(data []byte) error {
	links, err := decodeNested[TrackingLink](data, "trackingLink")
	if err != nil {
		return err
	}

	*t = links

	return nil
}

// Prizes is a prize list nested as {"prize": ...}; the API sends "" when empty.
type Prizes []Prize

// UnmarshalJSON implements json.Unmarshaler.
func (p *Prizes) UnmarshalJSON(data []byte) error {
	prizes, err := decodeNested[Prize](data, "prize")
	if err != nil {
		return err
	}

	*p = prizes

	return nil
}

// Category is a program or ad medium category.
type Category struct {
	ID   ID      `json:"@id"         yaml:"id"`
	Name *string `json:"$,omitempty" yaml:"name,omitempty"`
}

// Identifier returns the numeric identifier.
func (c Category) Identifier() int { return int(c.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category

	return decodeResource(data, "Category", (*plain)(c), "@id")
}

// Format is the display format of an ad medium.
type Format struct {
	ID   ID     `json:"@id" yaml:"id"`
	Name string `json:"$"   yaml:"name"`
}

// Identifier returns the numeric identifier.
func (f Format) Identifier() int { return int(f.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *Format) UnmarshalJSON(data []byte) error {
	type plain Format

	return decodeResource(data, "Format", (*plain)(f), "@id", "$")
}

// Vertical is the market segment of a program.
type Vertical struct {
	ID   ID     `json:"@id" yaml:"id"`
	Name string `json:"$"   yaml:"name"`
}

// Identifier returns the numeric identifier.
func (v Vertical) Identifier() int { return int(v.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vertical) UnmarshalJSON(data []byte) error {
	type plain Vertical

	return decodeResource(data, "Vertical", (*plain)(v), "@id", "$")
}

// Policy is a program policy.
type Policy struct {
	ID   ID      `json:"@id"         yaml:"id"`
	Name *string `json:"$,omitempty" yaml:"name,omitempty"`
}

// Identifier returns the numeric identifier.
func (p Policy) Identifier() int { return int(p.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Policy) UnmarshalJSON(data []byte) error {
	type plain Policy

	return decodeResource(data, "Policy", (*plain)(p), "@id")
}

// Prize is a lottery prize attached to an incentive.
type Prize struct {
	ID          ID     `json:"@id"         yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Count       Count  `json:"count"       yaml:"count"`
	Rank        Count  `json:"rank"        yaml:"rank"`
}

// Identifier returns the numeric identifier.
func (p Prize) Identifier() int { return int(p.ID) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Prize) UnmarshalJSON(data []byte) error {
	type plain Prize

	return decodeResource(data, "Prize", (*plain)(p), "@id", "name", "description", "count", "rank")
}

// TrackingLink carries the click and view URLs of an ad medium or product
// for one ad space.
type TrackingLink struct {
	AdSpaceID ID      `json:"@adspaceId"    yaml:"adspace_id"`
	PPV       string  `json:"ppv"           yaml:"ppv"`
	PPC       string  `json:"ppc"           yaml:"ppc"`
	TPV       *string `json:"tpv,omitempty" yaml:"tpv,omitempty"`
}

// Identifier returns the ad space identifier the link belongs to.
func (t TrackingLink) Identifier() int { return int(t.AdSpaceID) }

// UnmarshalJSON implements json.Unmarshaler.
func (t *TrackingLink) UnmarshalJSON(data []byte) error {
	type plain TrackingLink

	return decodeResource(data, "TrackingLink", (*plain)(t), "@adspaceId", "ppv", "ppc")
}

// decodeResource checks the required keys of a fragment and decodes it
// into target, which must not implement json.Unmarshaler itself.
func decodeResource(data []byte, resource string, target interface{}, required ...string) error {
	obj, err := decodeFields(resource, data)
	if err != nil {
		return err
	}

	err = obj.require(resource, required...)
	if err != nil {
		return err
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", resource, err)
	}

	return nil
}
