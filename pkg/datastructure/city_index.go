package datastructure

const (
	cityIndexBuckets = 10007 // prime
	cityHashBase     = 300
)

type cityIndexEntry struct {
	name string
	id   int32
}

// CityIndex. hash table from city name to city id, collisions are chained per bucket.
type CityIndex struct {
	buckets [][]cityIndexEntry
	size    int
}

func NewCityIndex() *CityIndex {
	return &CityIndex{
		buckets: make([][]cityIndexEntry, cityIndexBuckets),
	}
}

/*
hashCityName. polynomial rolling hash over the name bytes:

	h(s) = sum_i (s[i] + base) * base^i  mod p
*/
func hashCityName(name string) int {
	w := 0
	x := 1
	for i := 0; i < len(name); i++ {
		w += ((int(name[i]) + cityHashBase) * x) % cityIndexBuckets
		w %= cityIndexBuckets

		x *= cityHashBase
		x %= cityIndexBuckets
	}
	return w
}

func (ci *CityIndex) Insert(name string, id int32) error {
	h := hashCityName(name)
	for _, e := range ci.buckets[h] {
		if e.name == name {
			return ErrDuplicateCity
		}
	}
	ci.buckets[h] = append(ci.buckets[h], cityIndexEntry{name: name, id: id})
	ci.size++
	return nil
}

func (ci *CityIndex) Lookup(name string) (int32, bool) {
	for _, e := range ci.buckets[hashCityName(name)] {
		if e.name == name {
			return e.id, true
		}
	}
	return -1, false
}

func (ci *CityIndex) Len() int {
	return ci.size
}
