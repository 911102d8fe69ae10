package domain

// Product is a catalogue record.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code,omitempty"`
	CategoryID  string  `json:"categoryId,omitempty"`
	Category    string  `json:"category,omitempty"`
	UnitTypeID  string  `json:"unitTypeId,omitempty"`
	UnitType    string  `json:"unitType,omitempty"`
	Price       float64 `json:"price"`
	TaxPercent  float64 `json:"taxPercent"`
	Description string  `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// ProductInput is the editable field set of a product.
type ProductInput struct {
	Name        string  `validate:"required,max=200"`
	Code        string  `validate:"omitempty,max=50"`
	CategoryID  string  `validate:"required"`
	UnitTypeID  string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	TaxPercent  float64 `validate:"gte=0,lte=100"`
	Description string  `validate:"omitempty,max=2000"`
	IsActive    bool
}

// User is a directory record.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	RoleID    string `json:"roleId,omitempty"`
	Role      string `json:"role,omitempty"`
	TenantID  string `json:"tenantId,omitempty"`
	CompanyID string `json:"companyId,omitempty"`
	Company   string `json:"company,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// UserInput is the editable field set of a user. Password is only sent on create.
type UserInput struct {
	FullName  string `validate:"required,max=150"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"omitempty,e164"`
	Password  string `validate:"omitempty,min=8"`
	RoleID    string `validate:"required"`
	TenantID  string
	CompanyID string
	IsActive  bool
}

// LookupItem is one dropdown option.
type LookupItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
