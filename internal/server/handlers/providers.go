package handlers

import (
	"net/http"

	"healthpulse/internal/repositories/clinical"
	"healthpulse/internal/repositories/user"
	"healthpulse/internal/server/connection/reply"

	"github.com/go-chi/chi/v5"
)

// GetProvider - хэндлер для получения специалиста по идентификатору.
func GetProvider(res http.ResponseWriter, req *http.Request, records clinical.ProviderRecords, errs reply.Mapper) {
	p, err := records.GetProvider(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func GetProviderHandler(records clinical.ProviderRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		GetProvider(res, req, records, errs)
	}
	return fn
}

// UpdateProvider - хэндлер для обновления профессионального профиля специалиста.
func UpdateProvider(res http.ResponseWriter, req *http.Request, records clinical.ProviderRecords, errs reply.Mapper) {
	var upd user.ProviderUpdate
	if !decodeBody(res, req, &upd) {
		return
	}

	p, err := records.UpdateProvider(req.Context(), chi.URLParam(req, "id"), upd)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func UpdateProviderHandler(records clinical.ProviderRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		UpdateProvider(res, req, records, errs)
	}
	return fn
}

// AssignedPatients - хэндлер для получения полных записей пациентов, закрепленных за специалистом.
func AssignedPatients(res http.ResponseWriter, req *http.Request, records clinical.ProviderRecords, errs reply.Mapper) {
	patients, err := records.GetAssignedPatients(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.List(res, patients)
}

func AssignedPatientsHandler(records clinical.ProviderRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		AssignedPatients(res, req, records, errs)
	}
	return fn
}

// AssignPatient - хэндлер для закрепления пациента за специалистом.
func AssignPatient(res http.ResponseWriter, req *http.Request, records clinical.ProviderRecords, errs reply.Mapper) {
	p, err := records.AssignPatient(req.Context(), chi.URLParam(req, "id"), chi.URLParam(req, "patientId"))
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func AssignPatientHandler(records clinical.ProviderRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		AssignPatient(res, req, records, errs)
	}
	return fn
}
