package api

import (
	"context"
	"net/http"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
)

// userWire is a user as the API sends it.
type userWire struct {
	UserID      flexID `json:"userID"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	RoleID      flexID `json:"roleID"`
	RoleName    string `json:"roleName"`
	TenantID    flexID `json:"tenantID"`
	CompanyID   flexID `json:"companyID"`
	CompanyName string `json:"companyName"`
	IsActive    bool   `json:"isActive"`
}

func (w userWire) toDomain() domain.User {
	return domain.User{
		ID:        string(w.UserID),
		FullName:  w.FullName,
		Email:     w.Email,
		Phone:     w.PhoneNumber,
		RoleID:    string(w.RoleID),
		Role:      w.RoleName,
		TenantID:  string(w.TenantID),
		CompanyID: string(w.CompanyID),
		Company:   w.CompanyName,
		IsActive:  w.IsActive,
	}
}

// userBody is the request body of create and update. Password is only sent on create.
type userBody struct {
	UserID      flexID `json:"userID,omitempty"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password,omitempty"`
	RoleID      flexID `json:"roleID"`
	TenantID    flexID `json:"tenantID,omitempty"`
	CompanyID   flexID `json:"companyID,omitempty"`
	IsActive    bool   `json:"isActive"`
}

func newUserBody(id string, in domain.UserInput) userBody {
	body := userBody{
		UserID:      flexID(id),
		FullName:    in.FullName,
		Email:       in.Email,
		PhoneNumber: in.Phone,
		RoleID:      flexID(in.RoleID),
		TenantID:    flexID(in.TenantID),
		CompanyID:   flexID(in.CompanyID),
		IsActive:    in.IsActive,
	}
	if id == "" {
		body.Password = in.Password
	}
	return body
}

// Users implements ports.UserGateway.
type Users struct {
	client *Client
}

// NewUsers returns the users gateway.
func NewUsers(client *Client) *Users {
	return &Users{client: client}
}

var _ ports.UserGateway = (*Users)(nil)

// Resource returns domain.ResourceUsers.
func (g *Users) Resource() domain.Resource {
	return domain.ResourceUsers
}

// List calls GET /superadmin/users-list.
func (g *Users) List(ctx context.Context, d domain.Descriptor) (*domain.Page[domain.User], error) {
	cl := call{
		resource: domain.ResourceUsers,
		op:       "list",
		method:   http.MethodGet,
		path:     "/superadmin/users-list",
		query:    d.QueryValues(),
		want:     shapeWrapped,
	}
	return listPage(ctx, g.client, cl, userWire.toDomain)
}

// Lookup fetches a user-management dropdown.
func (g *Users) Lookup(ctx context.Context, name string) ([]domain.LookupItem, error) {
	return g.client.lookup(ctx, domain.ResourceUsers, name)
}

// Create calls POST /users/create.
func (g *Users) Create(ctx context.Context, fields domain.UserInput) (*domain.User, error) {
	cl := call{
		resource: domain.ResourceUsers,
		op:       "create",
		method:   http.MethodPost,
		path:     "/users/create",
		body:     newUserBody("", fields),
		want:     shapeEmpty,
	}
	return writeRecord(ctx, g.client, cl, userWire.toDomain, userFallback("", fields))
}

// Update calls PUT /users/update; the id travels in the body.
func (g *Users) Update(ctx context.Context, id string, fields domain.UserInput) (*domain.User, error) {
	cl := call{
		resource: domain.ResourceUsers,
		op:       "update",
		method:   http.MethodPut,
		path:     "/users/update",
		body:     newUserBody(id, fields),
		want:     shapeEmpty,
	}
	return writeRecord(ctx, g.client, cl, userWire.toDomain, userFallback(id, fields))
}

// Delete calls DELETE /User/{id}.
func (g *Users) Delete(ctx context.Context, id string) error {
	_, err := g.client.do(ctx, call{
		resource: domain.ResourceUsers,
		op:       "delete",
		method:   http.MethodDelete,
		path:     pathID("/User/%s", id),
		want:     shapeEmpty,
	})
	return err
}

// SetStatus calls PATCH /User/{id}/status.
func (g *Users) SetStatus(ctx context.Context, id string, active bool) error {
	_, err := g.client.do(ctx, call{
		resource: domain.ResourceUsers,
		op:       "status",
		method:   http.MethodPatch,
		path:     pathID("/User/%s/status", id),
		body:     statusBody{IsActive: active},
		want:     shapeEmpty,
	})
	return err
}

func userFallback(id string, in domain.UserInput) domain.User {
	return domain.User{
		ID:        id,
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		RoleID:    in.RoleID,
		TenantID:  in.TenantID,
		CompanyID: in.CompanyID,
		IsActive:  in.IsActive,
	}
}
