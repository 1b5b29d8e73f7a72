package handler

import (
	"context"
	"testing"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase/usecasetest"
	"clinic-registry/pkg/apperror"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientHandler_Create(t *testing.T) {
	stub := &usecasetest.Stub{NextID: 7}
	h := NewPatientHandler(stub, validator.NewValidator())

	result, err := h.CreatePatient(context.Background(), &Request{Body: []byte(`{"full_name":"Anna Smith","birth_date":"1990-03-21"}`)})

	require.NoError(t, err)
	assert.Equal(t, response.Created("patient_id", 7), result)
	req := stub.Last().Arg.(*dto.CreatePatientRequest)
	assert.Equal(t, "Anna Smith", req.FullName)
}

func TestPatientHandler_CreateRequiresName(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := NewPatientHandler(stub, validator.NewValidator())

	_, err := h.CreatePatient(context.Background(), &Request{Body: []byte(`{}`)})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "full_name")
	assert.Empty(t, stub.Calls)
}

func TestPatientHandler_UpdateRequiresID(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := NewPatientHandler(stub, validator.NewValidator())

	_, err := h.UpdatePatient(context.Background(), &Request{Body: []byte(`{"full_name":"Anna Smith"}`)})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "patient_id")
}

func TestServiceHandler_CreateKeepsExactPrice(t *testing.T) {
	stub := &usecasetest.Stub{NextID: 3}
	h := NewServiceHandler(stub, validator.NewValidator())

	result, err := h.CreateService(context.Background(), &Request{Body: []byte(`{"name":"ECG","price":1250.10}`)})

	require.NoError(t, err)
	assert.Equal(t, response.Created("service_id", 3), result)
	req := stub.Last().Arg.(*dto.CreateServiceRequest)
	require.NotNil(t, req.Price)
	assert.True(t, decimal.RequireFromString("1250.10").Equal(*req.Price))
}

func TestServiceHandler_RejectsNegativePrice(t *testing.T) {
	h := NewServiceHandler(&usecasetest.Stub{}, validator.NewValidator())

	_, err := h.CreateService(context.Background(), &Request{Body: []byte(`{"name":"ECG","price":-1}`)})

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestAppointmentHandler_ListPassesStatus(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	_, err := h.ListAppointments(context.Background(), &Request{Query: map[string][]string{
		"status": {"completed"},
		"limit":  {"10"},
	}})

	require.NoError(t, err)
	assert.Equal(t, &dto.ListAppointmentsRequest{Status: "completed", Limit: 10}, stub.Last().Arg)
}

func TestDoctorHandler_Delete(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := NewDoctorHandler(stub, validator.NewValidator())

	result, err := h.DeleteDoctor(context.Background(), &Request{Query: map[string][]string{"id": {"4"}}})

	require.NoError(t, err)
	assert.Equal(t, response.Success(), result)
	assert.Equal(t, usecasetest.Call{Method: "DeleteDoctor", Arg: int64(4)}, stub.Last())
}
