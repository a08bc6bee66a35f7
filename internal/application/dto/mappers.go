package dto

import (
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

// FromProduct mapea entidad → respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		Price:          p.Price,
		Unit:           p.Unit,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		InStock:        p.InStock,
		IsSeasonal:     p.IsSeasonal,
		SeasonalPeriod: p.SeasonalPeriod,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProducts(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

func FromCategories(list []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCategory(c))
	}
	return out
}

// FromOrder incluye líneas y, si viene cargado, el cliente.
func FromOrder(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductUnit: it.ProductUnit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	resp := OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryDate:    o.DeliveryDate,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
	if o.Customer != nil {
		resp.Customer = &OrderCustomerResponse{
			BusinessName: o.Customer.BusinessName,
			OwnerName:    o.Customer.OwnerName,
			OwnerMobile:  o.Customer.OwnerMobile,
		}
	}
	return resp
}

func FromOrders(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromInquiry(in *entity.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        in.ID,
		Name:      in.Name,
		Business:  in.Business,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    string(in.Status),
		CreatedAt: in.CreatedAt,
	}
}

func FromInquiries(list []*entity.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(list))
	for _, in := range list {
		out = append(out, FromInquiry(in))
	}
	return out
}

func FromProfile(p *entity.BusinessProfile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		BusinessName:  p.BusinessName,
		OwnerName:     p.OwnerName,
		OwnerMobile:   p.OwnerMobile,
		ManagerMobile: p.ManagerMobile,
		Role:          string(p.Role),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProfiles(list []*entity.BusinessProfile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProfile(p))
	}
	return out
}

// FromPermissions en el orden de la tabla de permisos.
func FromPermissions(list []rbac.Permission) []PermissionResponse {
	out := make([]PermissionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, PermissionResponse{Action: string(p.Action), Resource: string(p.Resource)})
	}
	return out
}

// ControlsFor calcula los controles de un panel a partir del evaluador de la sesión.
func ControlsFor(ev *rbac.Evaluator, resource rbac.Resource) PanelControls {
	return PanelControls{
		CanCreate: ev.CanPerformAction(rbac.ActionCreate, resource),
		CanRead:   ev.CanPerformAction(rbac.ActionRead, resource),
		CanUpdate: ev.CanPerformAction(rbac.ActionUpdate, resource),
		CanDelete: ev.CanPerformAction(rbac.ActionDelete, resource),
	}
}
