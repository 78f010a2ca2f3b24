package climate

// regions maps postcode prefixes (and optional district ranges) to EPC climate
// regions. Entries are ordered so the first match wins.
var regions = []region{
	{"ZE", 0, 0, 20},
	{"YO25", 0, 0, 11},
	{"YO", 15, 16, 11},
	{"YO", 0, 0, 10},
	{"WV", 0, 0, 6},
	{"WS", 0, 0, 6},
	{"WR", 0, 0, 6},
	{"WN", 0, 0, 7},
	{"WF", 0, 0, 11},
	{"WD", 0, 0, 1},
	{"WC", 0, 0, 1},
	{"WA", 0, 0, 7},
	{"W", 0, 0, 1},
	{"UB", 0, 0, 1},
	{"TW", 0, 0, 1},
	{"TS", 0, 0, 10},
	{"TR", 0, 0, 4},
	{"TQ", 0, 0, 4},
	{"TN", 0, 0, 2},
	{"TF", 0, 0, 6},
	{"TD15", 0, 0, 9},
	{"TD12", 0, 0, 9},
	{"TD", 0, 0, 9},
	{"TA", 0, 0, 5},
	{"SY", 15, 25, 13},
	{"SY14", 0, 0, 7},
	{"SY", 0, 0, 6},
	{"SW", 0, 0, 1},
	{"ST", 0, 0, 6},
	{"SS", 0, 0, 12},
	{"SR", 7, 8, 10},
	{"SR", 0, 0, 9},
	{"SP", 6, 11, 3},
	{"SP", 0, 0, 5},
	{"SO", 0, 0, 3},
	{"SN7", 0, 0, 1},
	{"SN", 0, 0, 5},
	{"SM", 0, 0, 1},
	{"SL", 0, 0, 1},
	{"SK", 22, 23, 6},
	{"SK17", 0, 0, 6},
	{"SK13", 0, 0, 6},
	{"SK", 0, 0, 7},
	{"SG", 0, 0, 1},
	{"SE", 0, 0, 1},
	{"SA", 61, 73, 13},
	{"SA", 31, 48, 13},
	{"SA", 14, 20, 13},
	{"SA", 0, 0, 5},
	{"S", 40, 45, 6},
	{"S", 32, 33, 6},
	{"S18", 0, 0, 6},
	{"S", 0, 0, 11},
	{"RM", 0, 0, 12},
	{"RH", 10, 20, 2},
	{"RH", 0, 0, 1},
	{"RG", 21, 29, 3},
	{"RG", 0, 0, 1},
	{"PR", 0, 0, 7},
	{"PO", 18, 22, 2},
	{"PO", 0, 0, 3},
	{"PL", 0, 0, 4},
	{"PH50", 0, 0, 14},
	{"PH49", 0, 0, 14},
	{"PH", 30, 44, 17},
	{"PH26", 0, 0, 16},
	{"PH", 19, 25, 17},
	{"PH", 0, 0, 15},
	{"PE", 20, 25, 11},
	{"PE", 9, 12, 11},
	{"PE", 0, 0, 12},
	{"PA", 0, 0, 14},
	{"OX", 0, 0, 1},
	{"OL", 0, 0, 7},
	{"NW", 0, 0, 1},
	{"NR", 0, 0, 12},
	{"NP8", 0, 0, 13},
	{"NP", 0, 0, 5},
	{"NN", 0, 0, 6},
	{"NG", 0, 0, 11},
	{"NE", 0, 0, 9},
	{"N", 0, 0, 1},
	{"ML", 0, 0, 14},
	{"MK", 0, 0, 1},
	{"ME", 0, 0, 2},
	{"M", 0, 0, 7},
	{"LU", 0, 0, 1},
	{"LS24", 0, 0, 10},
	{"LS", 0, 0, 11},
	{"LN", 0, 0, 11},
	{"LL", 30, 78, 13},
	{"LL", 23, 27, 13},
	{"LL", 0, 0, 7},
	{"LE", 0, 0, 6},
	{"LD", 0, 0, 13},
	{"LA", 7, 23, 8},
	{"LA", 0, 0, 7},
	{"L", 0, 0, 7},
	{"KY", 0, 0, 15},
	{"KW", 15, 17, 19},
	{"KW", 0, 0, 17},
	{"KT", 0, 0, 1},
	{"KA", 0, 0, 14},
	{"IV36", 0, 0, 16},
	{"IV", 30, 32, 16},
	{"IV", 0, 0, 17},
	{"IP", 0, 0, 12},
	{"IG", 0, 0, 12},
	{"HX", 0, 0, 11},
	{"HU", 0, 0, 11},
	{"HS", 0, 0, 18},
	{"HR", 0, 0, 6},
	{"HP", 0, 0, 1},
	{"HG", 0, 0, 10},
	{"HD", 0, 0, 11},
	{"HA", 0, 0, 1},
	{"GU", 51, 52, 3},
	{"GU46", 0, 0, 3},
	{"GU", 30, 35, 3},
	{"GU", 28, 29, 2},
	{"GU14", 0, 0, 3},
	{"GU", 11, 12, 3},
	{"GU", 0, 0, 1},
	{"GL", 0, 0, 5},
	{"G", 0, 0, 14},
	{"FY", 0, 0, 7},
	{"FK", 0, 0, 14},
	{"EX", 0, 0, 4},
	{"EN9", 0, 0, 12},
	{"EN", 0, 0, 1},
	{"EH", 43, 46, 9},
	{"EH", 0, 0, 15},
	{"EC", 0, 0, 1},
	{"E", 0, 0, 1},
	{"DY", 0, 0, 6},
	{"DT", 0, 0, 3},
	{"DN", 0, 0, 11},
	{"DL", 0, 0, 10},
	{"DH", 4, 5, 9},
	{"DH", 0, 0, 10},
	{"DG", 0, 0, 8},
	{"DE", 0, 0, 6},
	{"DD", 0, 0, 15},
	{"DA", 0, 0, 2},
	{"CW", 0, 0, 7},
	{"CV", 0, 0, 6},
	{"CT", 0, 0, 2},
	{"CR", 0, 0, 1},
	{"CO", 0, 0, 12},
	{"CM", 21, 23, 1},
	{"CM", 0, 0, 12},
	{"CH", 5, 8, 7},
	{"CH", 0, 0, 7},
	{"CF", 0, 0, 5},
	{"CB", 0, 0, 12},
	{"CA", 0, 0, 8},
	{"BT", 0, 0, 21},
	{"BS", 0, 0, 5},
	{"BR", 0, 0, 2},
	{"BN", 0, 0, 2},
	{"BL", 0, 0, 7},
	{"BH", 0, 0, 3},
	{"BD", 23, 24, 10},
	{"BD", 0, 0, 11},
	{"BB", 0, 0, 7},
	{"BA", 0, 0, 5},
	{"B", 0, 0, 6},
	{"AL", 0, 0, 1},
	{"AB", 0, 0, 16},
}
