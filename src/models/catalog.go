package models

// Domain โดเมนหลักของแบบประเมิน (ระดับบนสุดของ taxonomy)
type Domain struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

// SubDomain belongs to one Domain.
type SubDomain struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name" validate:"required"`
	DomainID    string `bson:"domain_id" json:"domain_id" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Control belongs to one SubDomain.
type Control struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name" validate:"required"`
	Definition  string `bson:"definition" json:"definition" validate:"required"`
	SubDomainID string `bson:"subdomain_id" json:"subdomain_id" validate:"required"`
}

// Metric belongs to one Control.
type Metric struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name" validate:"required"`
	ControlID   string `bson:"control_id" json:"control_id" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// DomainUpdate partial update, only non-nil fields are applied.
type DomainUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

type SubDomainUpdate struct {
	Name        *string `json:"name"`
	DomainID    *string `json:"domain_id"`
	Description *string `json:"description"`
}

type ControlUpdate struct {
	Name        *string `json:"name"`
	Definition  *string `json:"definition"`
	SubDomainID *string `json:"subdomain_id"`
}

type MetricUpdate struct {
	Name        *string `json:"name"`
	ControlID   *string `json:"control_id"`
	Description *string `json:"description"`
}
