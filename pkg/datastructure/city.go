package datastructure

type City struct {
	ID   int32
	Name string
}

func NewCity(id int32, name string) City {
	return City{
		ID:   id,
		Name: name,
	}
}

// ValidCityName. city name must be non empty and must not contain ';' or any byte below 0x20.
func ValidCityName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x20 || c == ';' {
			return false
		}
	}
	return true
}
