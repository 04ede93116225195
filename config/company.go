package config

// CompanyInfo holds the static studio details rendered into every email.
// These are not user input and never change at runtime.
type CompanyInfo struct {
	Name string

	Street  string
	Area    string
	City    string
	State   string
	Zip     string
	Country string

	Phone        string
	OfficePhone  string
	Email        string
	ProjectEmail string

	HoursWeekdays string
	HoursSaturday string
	HoursSunday   string
}

func Company() CompanyInfo {
	return CompanyInfo{
		Name: "DD Architecture",

		Street:  "123 Anna Nagar Main Road",
		Area:    "Anna Nagar",
		City:    "Chennai",
		State:   "Tamil Nadu",
		Zip:     "600040",
		Country: "India",

		Phone:        "+91 99999 88888",
		OfficePhone:  "+91 44 2345 6789",
		Email:        "info@ddarchitecture.com",
		ProjectEmail: "projects@ddarchitecture.com",

		HoursWeekdays: "9:00 AM - 6:00 PM",
		HoursSaturday: "10:00 AM - 2:00 PM",
		HoursSunday:   "Closed",
	}
}
