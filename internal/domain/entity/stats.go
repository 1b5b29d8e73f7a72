package entity

type Stats struct {
	Patients          int64
	TodayAppointments int64
	Doctors           int64
	Departments       int64
}
