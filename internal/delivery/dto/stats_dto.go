package dto

type StatsResponse struct {
	Patients          int64 `json:"patients"`
	TodayAppointments int64 `json:"todayAppointments"`
	Doctors           int64 `json:"doctors"`
	Departments       int64 `json:"departments"`
}
