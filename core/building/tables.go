package building

import "math"

var solarDeclinations = [12]float64{-20.7, -12.8, -1.8, 9.8, 18.8, 23.1, 21.2, 13.7, 2.9, -8.7, -18.4, -23.0}

var hotWaterMonthlyFactors = [12]float64{1.10, 1.06, 1.02, 0.98, 0.94, 0.90, 0.90, 0.94, 0.98, 1.02, 1.06, 1.10}

var hotWaterHourlyRatios = [24]float64{
	0.025, 0.018, 0.011, 0.010, 0.008, 0.013, 0.017, 0.044, 0.088, 0.075, 0.060, 0.056,
	0.050, 0.043, 0.036, 0.029, 0.030, 0.036, 0.053, 0.074, 0.071, 0.059, 0.050, 0.041,
}

// Cold mains water temperatures by latitude band, southernmost first.
var coldWaterBands = []struct {
	below float64
	temps [12]float64
}{
	{52.2, [12]float64{12.1, 11.4, 12.3, 15.2, 16.1, 19.3, 21.2, 20.1, 19.5, 16.8, 13.7, 12.4}},
	{53.3, [12]float64{12.9, 13.3, 14.4, 16.3, 17.7, 19.7, 21.8, 20.1, 20.3, 17.8, 15.3, 14.0}},
	{54.95, [12]float64{9.6, 9.3, 10.7, 13.7, 15.3, 17.3, 19.3, 18.6, 17.9, 15.5, 12.3, 10.5}},
	{math.Inf(1), [12]float64{9.6, 9.2, 9.8, 13.2, 14.5, 16.8, 19.4, 18.5, 17.5, 15.1, 13.7, 12.4}},
}

func coldWater(latitude float64) [12]float64 {
	for _, b := range coldWaterBands {
		if latitude < b.below {
			return b.temps
		}
	}
	return coldWaterBands[len(coldWaterBands)-1].temps
}

// SAP solar gain coefficients (k1..k9) for a surface orientation.
type orientation struct {
	a, b, c [4]float64
}

var (
	north = orientation{
		a: [4]float64{26.3, -38.5, 14.8, 0},
		b: [4]float64{-16.5, 27.3, -11.9, 0},
		c: [4]float64{-1.06, -0.0872, -0.191, 1},
	}
	south = orientation{
		a: [4]float64{-0.66, -0.106, 2.93, 0},
		b: [4]float64{3.63, -0.374, -7.4, 0},
		c: [4]float64{-2.71, -0.991, 4.59, 1},
	}
)

func cubic(k [4]float64, x float64) float64 {
	return ((k[0]*x+k[1])*x+k[2])*x + k[3]
}

// ratios returns the monthly ratio of surface to horizontal irradiance for a
// surface tilted tilt degrees from horizontal.
func (o orientation) ratios(latitude, tilt float64) [12]float64 {
	pf := math.Sin(math.Pi / 180 * tilt / 2)
	a, b, c := cubic(o.a, pf), cubic(o.b, pf), cubic(o.c, pf)
	var out [12]float64
	for m, decl := range solarDeclinations {
		h := math.Cos(math.Pi / 180 * (latitude - decl))
		out[m] = a*h*h + b*h + c
	}
	return out
}

const (
	windowTilt = 90.0 // vertical windows
	roofTilt   = 35.0
)

// EPC calibration thermostat profiles.
var (
	calibrationSummer  [24]float64
	calibrationWeekend [24]float64
	calibrationWeekday [24]float64
)

func init() {
	for h := 0; h < 24; h++ {
		calibrationSummer[h] = 7
		calibrationWeekend[h] = 7
		calibrationWeekday[h] = 7
		if h >= 7 {
			calibrationWeekend[h] = 20
		}
		if (h >= 7 && h <= 9) || h >= 16 {
			calibrationWeekday[h] = 20
		}
	}
}
