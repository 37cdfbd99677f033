package domain

// AttioType represents the semantic type of a CRM attribute as reported
// by the attribute metadata endpoint.
type AttioType string

const (
	AttioTypeText            AttioType = "text"
	AttioTypeNumber          AttioType = "number"
	AttioTypeCheckbox        AttioType = "checkbox"
	AttioTypeCurrency        AttioType = "currency"
	AttioTypeDate            AttioType = "date"
	AttioTypeTimestamp       AttioType = "timestamp"
	AttioTypeRating          AttioType = "rating"
	AttioTypeSelect          AttioType = "select"
	AttioTypeStatus          AttioType = "status"
	AttioTypeEmailAddress    AttioType = "email-address"
	AttioTypePhoneNumber     AttioType = "phone-number"
	AttioTypeDomain          AttioType = "domain"
	AttioTypePersonalName    AttioType = "personal-name"
	AttioTypeLocation        AttioType = "location"
	AttioTypeInteraction     AttioType = "interaction"
	AttioTypeRecordReference AttioType = "record-reference"
	AttioTypeActorReference  AttioType = "actor-reference"
	AttioTypeWorkspaceMember AttioType = "workspace-member"
)

// IsReference reports whether the type denotes a reference to another
// record or actor rather than a scalar value.
func (t AttioType) IsReference() bool {
	switch t {
	case AttioTypeRecordReference, AttioTypeActorReference, AttioTypeWorkspaceMember:
		return true
	default:
		return false
	}
}

// AttributeTypeInfo is the metadata the resolver returns for one
// (resource type, slug) pair. Instances are never mutated after
// construction.
type AttributeTypeInfo struct {
	AttioType AttioType      `json:"attioType"`
	FieldType string         `json:"fieldType"`
	IsArray   bool           `json:"isArray"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
