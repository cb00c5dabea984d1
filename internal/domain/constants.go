package domain

// Catalog defaults
const (
	DefaultHorizonDays = 28
	DefaultTimezone    = "Local"
)

// DefaultOfferedTimes времена, предлагаемые в каждый рабочий день
var DefaultOfferedTimes = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Human-readable formats used in notifications
const (
	HumanDateFormat = "Monday, 2 January 2006"
	HumanTimeFormat = "3:04 PM"
)

// Validation messages shown next to form fields
const (
	MsgNameRequired     = "Name is required."
	MsgEmailInvalid     = "A valid email is required."
	MsgDateTimeRequired = "Please select a date and time."
	MsgInvalidDate      = "Invalid date."
	MsgInvalidTime      = "Invalid time slot."
	MsgSlotTaken        = "That slot was just taken. Please choose another time."
	MsgTryAgain         = "Something went wrong. Please try again."
)

// BookingIDSuffixLength длина случайного суффикса в ID бронирования и комнате встречи
const BookingIDSuffixLength = 6
