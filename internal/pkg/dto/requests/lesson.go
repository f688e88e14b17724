package requests

type CreateLesson struct {
	Name    string `json:"name" validate:"required,max=100"`
	Teacher string `json:"teacher" validate:"max=100"`
}

type UpdateLesson struct {
	Name    *string `json:"name"`
	Teacher *string `json:"teacher"`
}

type UpdateHomework struct {
	Homework string `json:"homework" validate:"max=2000"`
}
