package geo

import "math"

// Spherical helpers for reconstructing arcs and circles. Distances are
// central angles in radians; bearings are degrees clockwise from north.

const degToRad = math.Pi / 180

// NMToRadians converts a distance in nautical miles to a central angle.
// One nautical mile subtends one minute of arc.
func NMToRadians(nm float64) float64 {
	return (nm / 60) * degToRad
}

// AngularDistance returns the central angle between two points, by the
// spherical law of cosines.
func AngularDistance(a, b Point) float64 {
	latA := a.Lat() * degToRad
	latB := b.Lat() * degToRad
	dLon := (b.Lon() - a.Lon()) * degToRad

	cosAngle := math.Sin(latA)*math.Sin(latB) + math.Cos(latA)*math.Cos(latB)*math.Cos(dLon)
	// Clamp against rounding drift before acos.
	cosAngle = math.Max(-1, math.Min(1, cosAngle))
	return math.Acos(cosAngle)
}

// Bearing returns the initial bearing from origin to p in degrees,
// normalized to [0, 360).
func Bearing(origin, p Point) float64 {
	latO := origin.Lat() * degToRad
	latP := p.Lat() * degToRad
	dLon := (p.Lon() - origin.Lon()) * degToRad

	y := math.Sin(dLon) * math.Cos(latP)
	x := math.Cos(latO)*math.Sin(latP) - math.Sin(latO)*math.Cos(latP)*math.Cos(dLon)

	deg := math.Atan2(y, x) / degToRad
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Destination returns the point reached by travelling from origin along
// the given bearing (degrees) for the given central angle (radians).
func Destination(origin Point, bearingDeg, dist float64) Point {
	latO := origin.Lat() * degToRad
	lonO := origin.Lon() * degToRad
	bearing := bearingDeg * degToRad

	lat := math.Asin(math.Sin(latO)*math.Cos(dist) +
		math.Cos(latO)*math.Sin(dist)*math.Cos(bearing))
	lon := lonO + math.Atan2(
		math.Sin(bearing)*math.Sin(dist)*math.Cos(latO),
		math.Cos(dist)-math.Sin(latO)*math.Sin(lat))

	// Normalize longitude to [-180, 180).
	lon = math.Mod(lon+3*math.Pi, 2*math.Pi) - math.Pi

	return Point{lon / degToRad, lat / degToRad}
}
