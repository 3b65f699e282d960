package get_availability

// Request модель запроса доступности зала на дату
type Request struct {
	RoomID string
	Date   string // "YYYY-MM-DD"
}

// Slot состояние одного слота сетки
type Slot struct {
	Time     string // "10:00"
	EndTime  string // "10:30"
	Status   string // available | reserved | invalid
	Occupant string // кто занял слот, только для reserved
}

// Range диапазон подряд идущих слотов с одним состоянием
type Range struct {
	Start    string
	End      string
	Status   string
	Occupant string
}

// Response модель ответа с сеткой доступности.
// Для неизвестного зала сетка возвращается целиком в состоянии invalid.
type Response struct {
	RoomID   string
	RoomName string
	Date     string
	Slots    []Slot
	Ranges   []Range
}
