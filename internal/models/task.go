package models

type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
}
