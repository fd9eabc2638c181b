package handlers

import (
	"net/http"

	"healthpulse/internal/repositories/clinical"
	"healthpulse/internal/repositories/user"
	"healthpulse/internal/server/connection/reply"

	"github.com/go-chi/chi/v5"
)

// ListPatients - хэндлер для получения списка всех пациентов.
func ListPatients(res http.ResponseWriter, req *http.Request, records clinical.PatientRecords, errs reply.Mapper) {
	patients, err := records.ListPatients(req.Context())
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.List(res, patients)
}

func ListPatientsHandler(records clinical.PatientRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		ListPatients(res, req, records, errs)
	}
	return fn
}

// GetPatient - хэндлер для получения пациента по идентификатору.
func GetPatient(res http.ResponseWriter, req *http.Request, records clinical.PatientRecords, errs reply.Mapper) {
	p, err := records.GetPatient(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func GetPatientHandler(records clinical.PatientRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		GetPatient(res, req, records, errs)
	}
	return fn
}

// UpdatePatient - хэндлер для обновления профиля пациента. Переносятся только переданные непустые поля.
func UpdatePatient(res http.ResponseWriter, req *http.Request, records clinical.PatientRecords, errs reply.Mapper) {
	var upd user.PatientUpdate
	if !decodeBody(res, req, &upd) {
		return
	}

	p, err := records.UpdatePatient(req.Context(), chi.URLParam(req, "id"), upd)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func UpdatePatientHandler(records clinical.PatientRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		UpdatePatient(res, req, records, errs)
	}
	return fn
}

// UpdateVitals - хэндлер для обновления жизненных показателей пациента.
func UpdateVitals(res http.ResponseWriter, req *http.Request, records clinical.PatientRecords, errs reply.Mapper) {
	var upd user.VitalsUpdate
	if !decodeBody(res, req, &upd) {
		return
	}

	p, err := records.UpdateVitals(req.Context(), chi.URLParam(req, "id"), upd)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func UpdateVitalsHandler(records clinical.PatientRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		UpdateVitals(res, req, records, errs)
	}
	return fn
}

// AddMedicalHistory - хэндлер для добавления записи в медицинскую историю пациента.
func AddMedicalHistory(res http.ResponseWriter, req *http.Request, records clinical.PatientRecords, errs reply.Mapper) {
	var entry user.MedicalHistoryInput
	if !decodeBody(res, req, &entry) {
		return
	}

	p, err := records.AddMedicalHistoryEntry(req.Context(), chi.URLParam(req, "id"), entry)
	if err != nil {
		errs.Error(res, req, err)
		return
	}
	reply.Data(res, http.StatusOK, p)
}

func AddMedicalHistoryHandler(records clinical.PatientRecords, errs reply.Mapper) http.HandlerFunc {
	fn := func(res http.ResponseWriter, req *http.Request) {
		AddMedicalHistory(res, req, records, errs)
	}
	return fn
}
