package datasets

import "wasi-apps/internal/domain"

// North American cities (SGB128), from
// https://people.sc.fsu.edu/~jburkardt/datasets/cities/cities.html
var sgb128 = [...]domain.NamedPoint{
	{Point: domain.Point{X: -5572.57, Y: 2839.81}, Name: "Youngstown, OH"},
	{Point: domain.Point{X: -6729.21, Y: 2962.82}, Name: "Yankton, SD"},
	{Point: domain.Point{X: -8326.72, Y: 3219.84}, Name: "Yakima, WA"},
	{Point: domain.Point{X: -4961.07, Y: 2920.67}, Name: "Worcester, MA"},
	{Point: domain.Point{X: -6202.70, Y: 3014.64}, Name: "Wisconsin Dells, WI"},
	{Point: domain.Point{X: -5544.93, Y: 2494.33}, Name: "Winston-Salem, NC"},
	{Point: domain.Point{X: -6712.64, Y: 3446.49}, Name: "Winnipeg, MB"},
	{Point: domain.Point{X: -5400.52, Y: 2707.84}, Name: "Winchester, VA"},
	{Point: domain.Point{X: -5383.92, Y: 2365.84}, Name: "Wilmington, NC"},
	{Point: domain.Point{X: -5220.18, Y: 2746.55}, Name: "Wilmington, DE"},
	{Point: domain.Point{X: -7159.69, Y: 3326.96}, Name: "Williston, ND"},
	{Point: domain.Point{X: -5320.37, Y: 2850.20}, Name: "Williamsport, PA"},
	{Point: domain.Point{X: -5685.17, Y: 2603.52}, Name: "Williamson, WV"},
	{Point: domain.Point{X: -6805.21, Y: 2342.34}, Name: "Wichita Falls, TX"},
	{Point: domain.Point{X: -6725.75, Y: 2604.20}, Name: "Wichita, KS"},
	{Point: domain.Point{X: -5577.40, Y: 2768.64}, Name: "Wheeling, WV"},
	{Point: domain.Point{X: -5531.11, Y: 1846.22}, Name: "West Palm Beach, FL"},
	{Point: domain.Point{X: -8313.57, Y: 3276.50}, Name: "Wenatchee, WA"},
	{Point: domain.Point{X: -8456.60, Y: 2861.92}, Name: "Weed, CA"},
	{Point: domain.Point{X: -5690.01, Y: 2157.15}, Name: "Waycross, GA"},
	{Point: domain.Point{X: -6193.72, Y: 3106.52}, Name: "Wausau, WI"},
	{Point: domain.Point{X: -6068.67, Y: 2926.89}, Name: "Waukegan, IL"},
	{Point: domain.Point{X: -6709.88, Y: 3102.40}, Name: "Watertown, SD"},
	{Point: domain.Point{X: -5245.72, Y: 3038.81}, Name: "Watertown, NY"},
	{Point: domain.Point{X: -6380.27, Y: 2936.57}, Name: "Waterloo, IA"},
	{Point: domain.Point{X: -5047.44, Y: 2870.91}, Name: "Waterbury, CT"},
	{Point: domain.Point{X: -5322.42, Y: 2687.11}, Name: "Washington, DC"},
	{Point: domain.Point{X: -5468.21, Y: 2891.63}, Name: "Warren, PA"},
	{Point: domain.Point{X: -8176.09, Y: 3183.22}, Name: "Walla Walla, WA"},
	{Point: domain.Point{X: -6711.93, Y: 2179.95}, Name: "Waco, TX"},
	{Point: domain.Point{X: -6047.92, Y: 2672.62}, Name: "Vincennes, IN"},
	{Point: domain.Point{X: -6702.97, Y: 1990.63}, Name: "Victoria, TX"},
	{Point: domain.Point{X: -6279.39, Y: 2235.23}, Name: "Vicksburg, MS"},
	{Point: domain.Point{X: -8507.06, Y: 3404.34}, Name: "Vancouver, BC"},
	{Point: domain.Point{X: -6772.07, Y: 3241.95}, Name: "Valley City, ND"},
	{Point: domain.Point{X: -5754.27, Y: 2130.20}, Name: "Valdosta, GA"},
	{Point: domain.Point{X: -5198.07, Y: 2978.71}, Name: "Utica, NY"},
	{Point: domain.Point{X: -5509.00, Y: 2756.92}, Name: "Uniontown, PA"},
	{Point: domain.Point{X: -6584.82, Y: 2235.23}, Name: "Tyler, TX"},
	{Point: domain.Point{X: -7909.38, Y: 2940.71}, Name: "Twin Falls, ID"},
	{Point: domain.Point{X: -6050.69, Y: 2294.65}, Name: "Tuscaloosa, AL"},
	{Point: domain.Point{X: -6129.46, Y: 2367.20}, Name: "Tupelo, MS"},
	{Point: domain.Point{X: -6626.97, Y: 2498.48}, Name: "Tulsa, OK"},
	{Point: domain.Point{X: -7667.55, Y: 2226.26}, Name: "Tucson, AZ"},
	{Point: domain.Point{X: -7221.19, Y: 2568.27}, Name: "Trinidad, CO"},
	{Point: domain.Point{X: -5166.26, Y: 2779.70}, Name: "Trenton, NJ"},
	{Point: domain.Point{X: -5916.64, Y: 3092.70}, Name: "Traverse City, MI"},
	{Point: domain.Point{X: -5484.79, Y: 3016.03}, Name: "Toronto, ON"},
	{Point: domain.Point{X: -6610.36, Y: 2698.17}, Name: "Topeka, KS"},
	{Point: domain.Point{X: -5772.25, Y: 2877.83}, Name: "Toledo, OH"},
	{Point: domain.Point{X: -6498.45, Y: 2309.87}, Name: "Texarkana, TX"},
	{Point: domain.Point{X: -6039.65, Y: 2727.21}, Name: "Terre Haute, IN"},
	{Point: domain.Point{X: -5696.92, Y: 1931.22}, Name: "Tampa, FL"},
	{Point: domain.Point{X: -5823.36, Y: 2103.96}, Name: "Tallahassee, FL"},
	{Point: domain.Point{X: -8459.38, Y: 3264.08}, Name: "Tacoma, WA"},
	{Point: domain.Point{X: -5261.63, Y: 2974.55}, Name: "Syracuse, NY"},
	{Point: domain.Point{X: -5689.32, Y: 2252.50}, Name: "Swainsboro, GA"},
	{Point: domain.Point{X: -5551.82, Y: 2343.71}, Name: "Sumter, SC"},
	{Point: domain.Point{X: -5195.30, Y: 2832.23}, Name: "Stroudsburg, PA"},
	{Point: domain.Point{X: -8380.61, Y: 2622.85}, Name: "Stockton, CA"},
	{Point: domain.Point{X: -6188.88, Y: 3076.14}, Name: "Stevens Point, WI"},
	{Point: domain.Point{X: -5570.49, Y: 2788.70}, Name: "Steubenville, OH"},
	{Point: domain.Point{X: -7132.05, Y: 2806.65}, Name: "Sterling, CO"},
	{Point: domain.Point{X: -5463.38, Y: 2636.00}, Name: "Staunton, VA"},
	{Point: domain.Point{X: -5790.89, Y: 2758.28}, Name: "Springfield, OH"},
	{Point: domain.Point{X: -6445.93, Y: 2571.74}, Name: "Springfield, MO"},
	{Point: domain.Point{X: -5015.64, Y: 2908.91}, Name: "Springfield, MA"},
	{Point: domain.Point{X: -6194.43, Y: 2749.99}, Name: "Springfield, IL"},
	{Point: domain.Point{X: -8112.52, Y: 3293.77}, Name: "Spokane, WA"},
	{Point: domain.Point{X: -5959.50, Y: 2879.91}, Name: "South Bend, IN"},
	{Point: domain.Point{X: -6683.62, Y: 3008.43}, Name: "Sioux Falls, SD"},
	{Point: domain.Point{X: -6660.11, Y: 2935.87}, Name: "Sioux City, IA"},
	{Point: domain.Point{X: -6477.72, Y: 2246.28}, Name: "Shreveport, LA"},
	{Point: domain.Point{X: -6675.33, Y: 2324.36}, Name: "Sherman, TX"},
	{Point: domain.Point{X: -7390.45, Y: 3095.47}, Name: "Sheridan, WY"},
	{Point: domain.Point{X: -6680.17, Y: 2434.22}, Name: "Seminole, OK"},
	{Point: domain.Point{X: -6012.69, Y: 2240.06}, Name: "Selma, AL"},
	{Point: domain.Point{X: -6441.79, Y: 2674.67}, Name: "Sedalia, MO"},
	{Point: domain.Point{X: -8452.47, Y: 3288.93}, Name: "Seattle, WA"},
	{Point: domain.Point{X: -5228.45, Y: 2861.23}, Name: "Scranton, PA"},
	{Point: domain.Point{X: -7162.46, Y: 2893.02}, Name: "Scottsbluff, NB"},
	{Point: domain.Point{X: -5109.61, Y: 2958.66}, Name: "Schenectady, NY"},
	{Point: domain.Point{X: -5602.95, Y: 2216.59}, Name: "Savannah, GA"},
	{Point: domain.Point{X: -5828.20, Y: 3212.26}, Name: "Sault Sainte Marie, MI"},
	{Point: domain.Point{X: -5702.45, Y: 1889.08}, Name: "Sarasota, FL"},
	{Point: domain.Point{X: -8479.42, Y: 2656.02}, Name: "Santa Rosa, CA"},
	{Point: domain.Point{X: -7320.67, Y: 2465.33}, Name: "Santa Fe, NM"},
	{Point: domain.Point{X: -8270.73, Y: 2378.25}, Name: "Santa Barbara, CA"},
	{Point: domain.Point{X: -8144.31, Y: 2332.65}, Name: "Santa Ana, CA"},
	{Point: domain.Point{X: -8421.36, Y: 2580.03}, Name: "San Jose, CA"},
	{Point: domain.Point{X: -8458.67, Y: 2610.42}, Name: "San Francisco, CA"},
	{Point: domain.Point{X: -5714.88, Y: 2864.02}, Name: "Sandusky, OH"},
	{Point: domain.Point{X: -8094.56, Y: 2260.10}, Name: "San Diego, CA"},
	{Point: domain.Point{X: -8105.59, Y: 2356.85}, Name: "San Bernardino, CA"},
	{Point: domain.Point{X: -6805.92, Y: 2032.79}, Name: "San Antonio, TX"},
	{Point: domain.Point{X: -6939.97, Y: 2173.73}, Name: "San Angelo, TX"},
	{Point: domain.Point{X: -7730.40, Y: 2816.32}, Name: "Salt Lake City, UT"},
	{Point: domain.Point{X: -5223.61, Y: 2651.18}, Name: "Salisbury, MD"},
	{Point: domain.Point{X: -8405.49, Y: 2533.72}, Name: "Salinas, CA"},
	{Point: domain.Point{X: -6744.43, Y: 2683.68}, Name: "Salina, KS"},
	{Point: domain.Point{X: -7324.14, Y: 2662.24}, Name: "Salida, CO"},
	{Point: domain.Point{X: -8500.82, Y: 3105.14}, Name: "Salem, OR"},
	{Point: domain.Point{X: -6432.79, Y: 3105.85}, Name: "Saint Paul, MN"},
	{Point: domain.Point{X: -6231.74, Y: 2668.46}, Name: "Saint Louis, MO"},
	{Point: domain.Point{X: -6553.01, Y: 2747.93}, Name: "Saint Joseph, MO"},
	{Point: domain.Point{X: -5975.39, Y: 2908.91}, Name: "Saint Joseph, MI"},
	{Point: domain.Point{X: -4976.25, Y: 3069.21}, Name: "Saint Johnsbury, VT"},
	{Point: domain.Point{X: -6506.72, Y: 3148.67}, Name: "Saint Cloud, MN"},
	{Point: domain.Point{X: -5618.84, Y: 2065.25}, Name: "Saint Augustine, FL"},
	{Point: domain.Point{X: -5799.89, Y: 3000.82}, Name: "Saginaw, MI"},
	{Point: domain.Point{X: -8394.41, Y: 2666.40}, Name: "Sacramento, CA"},
	{Point: domain.Point{X: -5041.91, Y: 3013.26}, Name: "Rutland, VT"},
	{Point: domain.Point{X: -7222.55, Y: 2307.80}, Name: "Roswell, NM"},
	{Point: domain.Point{X: -5375.64, Y: 2483.28}, Name: "Rocky Mount, NC"},
	{Point: domain.Point{X: -7547.32, Y: 2873.69}, Name: "Rock Springs, WY"},
	{Point: domain.Point{X: -6156.40, Y: 2920.67}, Name: "Rockford, IL"},
	{Point: domain.Point{X: -5362.51, Y: 2982.15}, Name: "Rochester, NY"},
	{Point: domain.Point{X: -6388.57, Y: 3041.59}, Name: "Rochester, MN"},
	{Point: domain.Point{X: -5523.51, Y: 2575.20}, Name: "Roanoke, VA"},
	{Point: domain.Point{X: -5351.44, Y: 2593.85}, Name: "Richmond, VA"},
	{Point: domain.Point{X: -5865.51, Y: 2752.08}, Name: "Richmond, IN"},
	{Point: domain.Point{X: -7744.91, Y: 2678.84}, Name: "Richfield, UT"},
	{Point: domain.Point{X: -6178.52, Y: 3153.51}, Name: "Rhinelander, WI"},
	{Point: domain.Point{X: -8278.33, Y: 2730.66}, Name: "Reno, NV"},
	{Point: domain.Point{X: -7230.86, Y: 3483.78}, Name: "Regina, SA"},
	{Point: domain.Point{X: -8446.23, Y: 2776.26}, Name: "Red Bluff, CA"},
	{Point: domain.Point{X: -5246.43, Y: 2786.63}, Name: "Reading, PA"},
	{Point: domain.Point{X: -5613.31, Y: 2843.96}, Name: "Ravenna, OH"},
}
