package domain

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/mmcloughlin/geohash"
)

const objectHashGeohashPrecision = 5

// normalizeAreaToBucket огрубляет площадь до "корзины", чтобы небольшие
// расхождения в цифрах не ломали сравнение объявлений.
func normalizeAreaToBucket(area float64, bucketSize float64) string {
	if bucketSize <= 0 {
		bucketSize = 1.0
	}
	return fmt.Sprintf("%d", int(area/bucketSize))
}

// ObjectHashFor строит стабильный хэш по ключевым полям объявления.
// Два объявления одного пользователя с одинаковым хэшем считаются дубликатами.
// Если координаты заданы, локация кодируется geohash-ом (точность ~5 км),
// иначе берется нормализованный адрес.
func ObjectHashFor(p *Property) string {
	var location string
	if p.Latitude != nil && p.Longitude != nil {
		location = geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, objectHashGeohashPrecision)
	} else {
		location = strings.ToLower(strings.TrimSpace(p.Address))
	}

	parts := []string{
		location,
		p.PropertyType,
		p.Type,
		normalizeAreaToBucket(p.Area, 2.0),
	}

	if p.Rooms != nil {
		parts = append(parts, fmt.Sprintf("%d", *p.Rooms))
	} else {
		parts = append(parts, "null")
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%x", sum)
}
