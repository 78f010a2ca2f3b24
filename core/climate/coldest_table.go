package climate

// coldestTemperatures holds the coldest hourly outside temperature of the year
// on a 0.5 degree grid. Keys are {lat*10, lon*10}, values are milli-degC.
var coldestTemperatures = map[[2]int]int{
	{500, -35}: 461,
	{500, -40}: 4554,
	{500, -45}: 4406,
	{500, -50}: 4017,
	{500, -55}: 4492,
	{505, -5}:  302,
	{505, -10}: 3188,
	{505, -15}: 2812,
	{505, -20}: 2583,
	{505, -25}: 2774,
	{505, -30}: 2697,
	{505, -35}: 1744,
	{505, -40}: 854,
	{505, -45}: 127,
	{505, -50}: 2708,
	{505, 0}:   2886,
	{505, 5}:   2764,
	{510, -5}:  -3846,
	{510, -10}: -4285,
	{510, -15}: -4421,
	{510, -20}: -4274,
	{510, -25}: -3764,
	{510, -30}: -2635,
	{510, -35}: -1712,
	{510, -40}: -232,
	{510, -45}: 1638,
	{510, 0}:   -3344,
	{510, 5}:   -2101,
	{510, 10}:  307,
	{510, 15}:  1271,
	{515, -5}:  -5969,
	{515, -10}: -5673,
	{515, -15}: -509,
	{515, -20}: -4292,
	{515, -25}: -3039,
	{515, -30}: -1591,
	{515, -35}: 221,
	{515, -40}: 1249,
	{515, -45}: 2001,
	{515, -50}: 2948,
	{515, 0}:   -5628,
	{515, 5}:   -4165,
	{515, 10}:  -1369,
	{515, 15}:  1813,
	{520, -5}:  -5601,
	{520, -10}: -5283,
	{520, -15}: -4854,
	{520, -20}: -437,
	{520, -25}: -37,
	{520, -30}: -3597,
	{520, -35}: -313,
	{520, -40}: -2297,
	{520, -45}: -642,
	{520, -50}: 2044,
	{520, -55}: 3622,
	{520, 0}:   -5439,
	{520, 5}:   -4533,
	{520, 10}:  -2836,
	{520, 15}:  146,
	{525, -5}:  -4979,
	{525, -10}: -4814,
	{525, -15}: -4451,
	{525, -20}: -3991,
	{525, -25}: -3603,
	{525, -30}: -3359,
	{525, -35}: -3007,
	{525, -40}: -479,
	{525, -45}: 2769,
	{525, 0}:   -4845,
	{525, 5}:   -40,
	{525, 10}:  -396,
	{525, 15}:  -1778,
	{525, 20}:  1576,
	{530, -5}:  -4434,
	{530, -10}: -451,
	{530, -15}: -4234,
	{530, -20}: -3806,
	{530, -25}: -3409,
	{530, -30}: -2964,
	{530, -35}: -2419,
	{530, -40}: -304,
	{530, -45}: 1987,
	{530, -50}: 3827,
	{530, 0}:   -407,
	{530, 5}:   -1754,
	{530, 10}:  277,
	{530, 15}:  1709,
	{530, 20}:  2397,
	{535, -5}:  -4156,
	{535, -10}: -4141,
	{535, -15}: -3834,
	{535, -20}: -3492,
	{535, -25}: -2729,
	{535, -30}: -1344,
	{535, -35}: 446,
	{535, -40}: 1524,
	{535, -45}: 2578,
	{535, 0}:   -2173,
	{535, 5}:   1351,
	{540, -5}:  -2622,
	{540, -10}: -3424,
	{540, -15}: -3834,
	{540, -20}: -3837,
	{540, -25}: -2766,
	{540, -30}: -56,
	{540, -35}: 122,
	{540, -55}: 3297,
	{540, -60}: 1151,
	{540, -65}: -1496,
	{540, -70}: -3164,
	{540, -75}: -3294,
	{540, -80}: -2848,
	{540, 0}:   231,
	{545, -5}:  579,
	{545, -10}: -1903,
	{545, -15}: -4414,
	{545, -20}: -5579,
	{545, -25}: -5161,
	{545, -30}: -2187,
	{545, -35}: -424,
	{545, -40}: 1047,
	{545, -45}: 2244,
	{545, -50}: 2994,
	{545, -55}: 1337,
	{545, -60}: -575,
	{545, -65}: -2338,
	{545, -70}: -3041,
	{545, -75}: -2662,
	{545, -80}: -1808,
	{550, -15}: -996,
	{550, -20}: -4155,
	{550, -25}: -6204,
	{550, -30}: -4514,
	{550, -35}: -2703,
	{550, -40}: -158,
	{550, -45}: -407,
	{550, -50}: 806,
	{550, -55}: 2081,
	{550, -60}: 887,
	{550, -65}: -469,
	{550, -70}: -993,
	{550, -75}: -77,
	{555, -15}: 873,
	{555, -20}: -2474,
	{555, -25}: -5702,
	{555, -30}: -5566,
	{555, -35}: -4895,
	{555, -40}: -4132,
	{555, -45}: -2358,
	{555, -50}: -579,
	{555, -55}: 1338,
	{555, -60}: 2057,
	{555, -65}: 2505,
	{560, -20}: 1815,
	{560, -25}: 195,
	{560, -30}: -2189,
	{560, -35}: -4626,
	{560, -40}: -549,
	{560, -45}: -4919,
	{560, -50}: -3499,
	{560, -55}: -1181,
	{560, -60}: 1063,
	{560, -65}: 2977,
	{565, -25}: -305,
	{565, -30}: -311,
	{565, -35}: -541,
	{565, -40}: -6757,
	{565, -45}: -7005,
	{565, -50}: -5879,
	{565, -55}: -3253,
	{565, -60}: 46,
	{565, -65}: 2699,
	{565, -70}: 4242,
	{570, -20}: 1061,
	{570, -25}: -4347,
	{570, -30}: -6774,
	{570, -35}: -8256,
	{570, -40}: -8531,
	{570, -45}: -8952,
	{570, -50}: -7613,
	{570, -55}: -4211,
	{570, -60}: -368,
	{570, -65}: 2421,
	{570, -70}: 3249,
	{570, -75}: 4066,
	{575, -20}: 562,
	{575, -25}: -2636,
	{575, -30}: -324,
	{575, -35}: -3825,
	{575, -40}: -4351,
	{575, -45}: -5412,
	{575, -50}: -7049,
	{575, -55}: -3771,
	{575, -60}: 2,
	{575, -65}: 2105,
	{575, -70}: 2649,
	{575, -75}: 3287,
	{580, -35}: 1614,
	{580, -40}: -872,
	{580, -45}: -2392,
	{580, -50}: -2029,
	{580, -55}: 609,
	{580, -60}: 2139,
	{580, -65}: 2056,
	{580, -70}: 1757,
	{585, -30}: 1924,
	{585, -35}: 1382,
	{585, -40}: 97,
	{585, -45}: 903,
	{585, -50}: 1605,
	{585, -55}: 2935,
	{585, -60}: 2901,
	{585, -65}: 2723,
	{585, -70}: 2661,
	{590, -25}: 2975,
	{590, -30}: 2525,
	{590, -35}: 3066,
	{595, -15}: 3281,
	{595, -25}: 3684,
	{595, -30}: 379,
	{600, -10}: 2361,
	{600, -15}: 2383,
	{605, -10}: 1794,
	{605, -15}: 1783,
	{610, -10}: 1721,
}
