package datasets

import "wasi-apps/internal/domain"

// West German cities after Spaeth, from
// https://people.sc.fsu.edu/~jburkardt/datasets/cities/cities.html
var wg59 = [...]domain.NamedPoint{
	{Point: domain.Point{X: 54.0, Y: -65.0}, Name: "Augsburg"},
	{Point: domain.Point{X: 0.0, Y: 71.0}, Name: "Bielefeld"},
	{Point: domain.Point{X: -31.0, Y: 53.0}, Name: "Bochum"},
	{Point: domain.Point{X: 8.0, Y: 111.0}, Name: "Bremen"},
	{Point: domain.Point{X: 1.0, Y: -9.0}, Name: "Darmstadt"},
	{Point: domain.Point{X: -36.0, Y: 52.0}, Name: "Essen"},
	{Point: domain.Point{X: -22.0, Y: -76.0}, Name: "Freiburg"},
	{Point: domain.Point{X: 0.0, Y: 20.0}, Name: "Giessen"},
	{Point: domain.Point{X: 34.0, Y: 129.0}, Name: "Hamburg"},
	{Point: domain.Point{X: 28.0, Y: 84.0}, Name: "Hannover"},
	{Point: domain.Point{X: 12.0, Y: -38.0}, Name: "Heilbronn"},
	{Point: domain.Point{X: -21.0, Y: -26.0}, Name: "Kaiserslautern"},
	{Point: domain.Point{X: -6.0, Y: -41.0}, Name: "Karlsruhe"},
	{Point: domain.Point{X: 21.0, Y: 45.0}, Name: "Kassel"},
	{Point: domain.Point{X: 38.0, Y: -90.0}, Name: "Kempten"},
	{Point: domain.Point{X: -24.0, Y: 10.0}, Name: "Koblenz"},
	{Point: domain.Point{X: -38.0, Y: 35.0}, Name: "Koeln"},
	{Point: domain.Point{X: 86.0, Y: -57.0}, Name: "Landshut"},
	{Point: domain.Point{X: 58.0, Y: -1.0}, Name: "Lichtenfels"},
	{Point: domain.Point{X: -9.0, Y: -3.0}, Name: "Mainz"},
	{Point: domain.Point{X: 70.0, Y: -74.0}, Name: "Muenchen"},
	{Point: domain.Point{X: -20.0, Y: 70.0}, Name: "Muenster"},
	{Point: domain.Point{X: -43.0, Y: 44.0}, Name: "Neuss"},
	{Point: domain.Point{X: 59.0, Y: -26.0}, Name: "Nuernburg"},
	{Point: domain.Point{X: -5.0, Y: 114.0}, Name: "Oldenburg"},
	{Point: domain.Point{X: 83.0, Y: -41.0}, Name: "Regensburg"},
	{Point: domain.Point{X: 27.0, Y: 153.0}, Name: "Rendsburg"},
	{Point: domain.Point{X: 12.0, Y: -49.0}, Name: "Stuttgart"},
	{Point: domain.Point{X: 30.0, Y: -65.0}, Name: "Ulm"},
	{Point: domain.Point{X: 31.0, Y: -12.0}, Name: "Wuerzburg"},
	{Point: domain.Point{X: -57.0, Y: 28.0}, Name: "Aachen"},
	{Point: domain.Point{X: 44.0, Y: -28.0}, Name: "Ansbach"},
	{Point: domain.Point{X: 7.0, Y: -7.0}, Name: "Aschaffenburg"},
	{Point: domain.Point{X: 54.0, Y: -8.0}, Name: "Bamberg"},
	{Point: domain.Point{X: 65.0, Y: -8.0}, Name: "Bayreuth"},
	{Point: domain.Point{X: -35.0, Y: 25.0}, Name: "Bonn"},
	{Point: domain.Point{X: 46.0, Y: 79.0}, Name: "Braunschweig"},
	{Point: domain.Point{X: 5.0, Y: 118.0}, Name: "Bremen"},
	{Point: domain.Point{X: 56.0, Y: 4.0}, Name: "Coburg"},
	{Point: domain.Point{X: -21.0, Y: 54.0}, Name: "Dortmund"},
	{Point: domain.Point{X: -40.0, Y: 45.0}, Name: "Duesseldorf"},
	{Point: domain.Point{X: -43.0, Y: 51.0}, Name: "Duisburg"},
	{Point: domain.Point{X: 57.0, Y: -21.0}, Name: "Erlangen"},
	{Point: domain.Point{X: 0.0, Y: 0.0}, Name: "Frankfurt"},
	{Point: domain.Point{X: 25.0, Y: 15.0}, Name: "Fulda"},
	{Point: domain.Point{X: 56.0, Y: -25.0}, Name: "Fuerth"},
	{Point: domain.Point{X: -34.0, Y: 56.0}, Name: "Gelsen-Kirchen"},
	{Point: domain.Point{X: -24.0, Y: 36.0}, Name: "Gummersburg"},
	{Point: domain.Point{X: -25.0, Y: 49.0}, Name: "Hagen"},
	{Point: domain.Point{X: 64.0, Y: -26.0}, Name: "Hersbruck"},
	{Point: domain.Point{X: 63.0, Y: -48.0}, Name: "Ingolstadt"},
	{Point: domain.Point{X: 37.0, Y: 155.0}, Name: "Kiel"},
	{Point: domain.Point{X: -5.0, Y: -24.0}, Name: "Mannheim"},
	{Point: domain.Point{X: 2.0, Y: 28.0}, Name: "Marburg"},
	{Point: domain.Point{X: -18.0, Y: -58.0}, Name: "Offenburg"},
	{Point: domain.Point{X: -10.0, Y: 82.0}, Name: "Osnabrueck"},
	{Point: domain.Point{X: 12.0, Y: -58.0}, Name: "Reutlingen"},
	{Point: domain.Point{X: -40.0, Y: -28.0}, Name: "Saarbruecken"},
	{Point: domain.Point{X: -16.0, Y: 28.0}, Name: "Siegen"},
}
