package get_catalog

// CatalogResponse правила выбора слотов для календаря клиента
type CatalogResponse struct {
	OfferedTimes []string `json:"offeredTimes"`
	HorizonDays  int      `json:"horizonDays"`
	Timezone     string   `json:"timezone"`
	Today        string   `json:"today"`
	MaxDate      string   `json:"maxDate"`
	Weekdays     []string `json:"weekdays"`
}

// bookableWeekdays дни недели, в которые предлагаются слоты
var bookableWeekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
