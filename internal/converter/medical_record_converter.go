package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

func CreateMedicalRecordRequestToEntity(req *dto.CreateMedicalRecordRequest) *entity.MedicalRecord {
	return &entity.MedicalRecord{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AppointmentID: req.AppointmentID,
		DiagnosesID:   req.DiagnosesID,
		Notes:         nullable(req.Notes),
	}
}

func UpdateMedicalRecordRequestToEntity(req *dto.UpdateMedicalRecordRequest) *entity.MedicalRecord {
	record := CreateMedicalRecordRequestToEntity(&req.CreateMedicalRecordRequest)
	record.RecordID = req.RecordID
	return record
}

func MedicalRecordsToResponses(records []entity.MedicalRecordListItem) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, r := range records {
		responses[i] = dto.MedicalRecordResponse{
			RecordID:      r.RecordID,
			PatientID:     r.PatientID,
			DoctorID:      r.DoctorID,
			AppointmentID: r.AppointmentID,
			DiagnosesID:   r.DiagnosesID,
			Notes:         r.Notes,
			CreatedAt:     r.CreatedAt,
			PatientName:   r.PatientName,
			DoctorName:    r.DoctorName,
			DiagnosisName: r.DiagnosisName,
		}
	}
	return responses
}
