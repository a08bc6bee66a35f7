package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/mocks"
)

func contactForm() dto.ContactRequest {
	return dto.ContactRequest{
		Name: "Meera", Business: "Cafe Leaf", Email: "meera@cafeleaf.in",
		Phone: "9000000001", Message: "Weekly supply of herbs?",
	}
}

func TestSubmit_GuardaPendiente(t *testing.T) {
	repo := new(mocks.InquiryRepository)
	uc := usecase.NewInquiryUseCase(repo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(in *entity.Inquiry) bool {
		return in.Status == entity.InquiryStatusPending && in.Business == "Cafe Leaf"
	})).Return(nil)

	out, err := uc.Submit(context.Background(), contactForm())
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "pending", out.Data.Status)
}

func TestSubmit_CampoEnBlanco(t *testing.T) {
	repo := new(mocks.InquiryRepository)
	uc := usecase.NewInquiryUseCase(repo)
	in := contactForm()
	in.Message = "   "

	_, err := uc.Submit(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInquiries_StaffSinAcceso(t *testing.T) {
	repo := new(mocks.InquiryRepository)
	uc := usecase.NewInquiryUseCase(repo)

	_, err := uc.List(context.Background(), as(rbac.RoleStaff), "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInquiries_FiltroPorEstado(t *testing.T) {
	repo := new(mocks.InquiryRepository)
	uc := usecase.NewInquiryUseCase(repo)
	repo.On("List", mock.Anything, entity.InquiryStatusArchived).Return([]*entity.Inquiry{}, nil)

	out, err := uc.List(context.Background(), as(rbac.RoleManager), "archived")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Controls.CanUpdate)

	_, err = uc.List(context.Background(), as(rbac.RoleManager), "spam")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInquiries_ActualizarEstado(t *testing.T) {
	repo := new(mocks.InquiryRepository)
	uc := usecase.NewInquiryUseCase(repo)
	repo.On("UpdateStatus", mock.Anything, "i-1", entity.InquiryStatusInProgress).Return(nil)

	require.NoError(t, uc.UpdateStatus(context.Background(), as(rbac.RoleAdmin), "i-1", "in_progress"))
	assert.ErrorIs(t, uc.UpdateStatus(context.Background(), as(rbac.RoleUser), "i-1", "completed"), domain.ErrForbidden)
}
