// generated code - do not change

package scanline

// Lookup is the table of actions for every cycle of a rendering scanline.
var Lookup = Table{
	{Cycle: 0, Action: RestCycle},
	{Cycle: 1, Action: RestCycle},
	{Cycle: 2, Action: FetchNametable},
	{Cycle: 3, Action: RestCycle},
	{Cycle: 4, Action: FetchAttribute},
	{Cycle: 5, Action: RestCycle},
	{Cycle: 6, Action: FetchPatternLow},
	{Cycle: 7, Action: FetchPatternHigh},
	{Cycle: 8, Action: IncrementHorizontal},
	{Cycle: 9, Action: RestCycle},
	{Cycle: 10, Action: FetchNametable},
	{Cycle: 11, Action: RestCycle},
	{Cycle: 12, Action: FetchAttribute},
	{Cycle: 13, Action: RestCycle},
	{Cycle: 14, Action: FetchPatternLow},
	{Cycle: 15, Action: FetchPatternHigh},
	{Cycle: 16, Action: IncrementHorizontal},
	{Cycle: 17, Action: RestCycle},
	{Cycle: 18, Action: FetchNametable},
	{Cycle: 19, Action: RestCycle},
	{Cycle: 20, Action: FetchAttribute},
	{Cycle: 21, Action: RestCycle},
	{Cycle: 22, Action: FetchPatternLow},
	{Cycle: 23, Action: FetchPatternHigh},
	{Cycle: 24, Action: IncrementHorizontal},
	{Cycle: 25, Action: RestCycle},
	{Cycle: 26, Action: FetchNametable},
	{Cycle: 27, Action: RestCycle},
	{Cycle: 28, Action: FetchAttribute},
	{Cycle: 29, Action: RestCycle},
	{Cycle: 30, Action: FetchPatternLow},
	{Cycle: 31, Action: FetchPatternHigh},
	{Cycle: 32, Action: IncrementHorizontal},
	{Cycle: 33, Action: RestCycle},
	{Cycle: 34, Action: FetchNametable},
	{Cycle: 35, Action: RestCycle},
	{Cycle: 36, Action: FetchAttribute},
	{Cycle: 37, Action: RestCycle},
	{Cycle: 38, Action: FetchPatternLow},
	{Cycle: 39, Action: FetchPatternHigh},
	{Cycle: 40, Action: IncrementHorizontal},
	{Cycle: 41, Action: RestCycle},
	{Cycle: 42, Action: FetchNametable},
	{Cycle: 43, Action: RestCycle},
	{Cycle: 44, Action: FetchAttribute},
	{Cycle: 45, Action: RestCycle},
	{Cycle: 46, Action: FetchPatternLow},
	{Cycle: 47, Action: FetchPatternHigh},
	{Cycle: 48, Action: IncrementHorizontal},
	{Cycle: 49, Action: RestCycle},
	{Cycle: 50, Action: FetchNametable},
	{Cycle: 51, Action: RestCycle},
	{Cycle: 52, Action: FetchAttribute},
	{Cycle: 53, Action: RestCycle},
	{Cycle: 54, Action: FetchPatternLow},
	{Cycle: 55, Action: FetchPatternHigh},
	{Cycle: 56, Action: IncrementHorizontal},
	{Cycle: 57, Action: RestCycle},
	{Cycle: 58, Action: FetchNametable},
	{Cycle: 59, Action: RestCycle},
	{Cycle: 60, Action: FetchAttribute},
	{Cycle: 61, Action: RestCycle},
	{Cycle: 62, Action: FetchPatternLow},
	{Cycle: 63, Action: FetchPatternHigh},
	{Cycle: 64, Action: IncrementHorizontal},
	{Cycle: 65, Action: RestCycle},
	{Cycle: 66, Action: FetchNametable},
	{Cycle: 67, Action: RestCycle},
	{Cycle: 68, Action: FetchAttribute},
	{Cycle: 69, Action: RestCycle},
	{Cycle: 70, Action: FetchPatternLow},
	{Cycle: 71, Action: FetchPatternHigh},
	{Cycle: 72, Action: IncrementHorizontal},
	{Cycle: 73, Action: RestCycle},
	{Cycle: 74, Action: FetchNametable},
	{Cycle: 75, Action: RestCycle},
	{Cycle: 76, Action: FetchAttribute},
	{Cycle: 77, Action: RestCycle},
	{Cycle: 78, Action: FetchPatternLow},
	{Cycle: 79, Action: FetchPatternHigh},
	{Cycle: 80, Action: IncrementHorizontal},
	{Cycle: 81, Action: RestCycle},
	{Cycle: 82, Action: FetchNametable},
	{Cycle: 83, Action: RestCycle},
	{Cycle: 84, Action: FetchAttribute},
	{Cycle: 85, Action: RestCycle},
	{Cycle: 86, Action: FetchPatternLow},
	{Cycle: 87, Action: FetchPatternHigh},
	{Cycle: 88, Action: IncrementHorizontal},
	{Cycle: 89, Action: RestCycle},
	{Cycle: 90, Action: FetchNametable},
	{Cycle: 91, Action: RestCycle},
	{Cycle: 92, Action: FetchAttribute},
	{Cycle: 93, Action: RestCycle},
	{Cycle: 94, Action: FetchPatternLow},
	{Cycle: 95, Action: FetchPatternHigh},
	{Cycle: 96, Action: IncrementHorizontal},
	{Cycle: 97, Action: RestCycle},
	{Cycle: 98, Action: FetchNametable},
	{Cycle: 99, Action: RestCycle},
	{Cycle: 100, Action: FetchAttribute},
	{Cycle: 101, Action: RestCycle},
	{Cycle: 102, Action: FetchPatternLow},
	{Cycle: 103, Action: FetchPatternHigh},
	{Cycle: 104, Action: IncrementHorizontal},
	{Cycle: 105, Action: RestCycle},
	{Cycle: 106, Action: FetchNametable},
	{Cycle: 107, Action: RestCycle},
	{Cycle: 108, Action: FetchAttribute},
	{Cycle: 109, Action: RestCycle},
	{Cycle: 110, Action: FetchPatternLow},
	{Cycle: 111, Action: FetchPatternHigh},
	{Cycle: 112, Action: IncrementHorizontal},
	{Cycle: 113, Action: RestCycle},
	{Cycle: 114, Action: FetchNametable},
	{Cycle: 115, Action: RestCycle},
	{Cycle: 116, Action: FetchAttribute},
	{Cycle: 117, Action: RestCycle},
	{Cycle: 118, Action: FetchPatternLow},
	{Cycle: 119, Action: FetchPatternHigh},
	{Cycle: 120, Action: IncrementHorizontal},
	{Cycle: 121, Action: RestCycle},
	{Cycle: 122, Action: FetchNametable},
	{Cycle: 123, Action: RestCycle},
	{Cycle: 124, Action: FetchAttribute},
	{Cycle: 125, Action: RestCycle},
	{Cycle: 126, Action: FetchPatternLow},
	{Cycle: 127, Action: FetchPatternHigh},
	{Cycle: 128, Action: IncrementHorizontal},
	{Cycle: 129, Action: RestCycle},
	{Cycle: 130, Action: FetchNametable},
	{Cycle: 131, Action: RestCycle},
	{Cycle: 132, Action: FetchAttribute},
	{Cycle: 133, Action: RestCycle},
	{Cycle: 134, Action: FetchPatternLow},
	{Cycle: 135, Action: FetchPatternHigh},
	{Cycle: 136, Action: IncrementHorizontal},
	{Cycle: 137, Action: RestCycle},
	{Cycle: 138, Action: FetchNametable},
	{Cycle: 139, Action: RestCycle},
	{Cycle: 140, Action: FetchAttribute},
	{Cycle: 141, Action: RestCycle},
	{Cycle: 142, Action: FetchPatternLow},
	{Cycle: 143, Action: FetchPatternHigh},
	{Cycle: 144, Action: IncrementHorizontal},
	{Cycle: 145, Action: RestCycle},
	{Cycle: 146, Action: FetchNametable},
	{Cycle: 147, Action: RestCycle},
	{Cycle: 148, Action: FetchAttribute},
	{Cycle: 149, Action: RestCycle},
	{Cycle: 150, Action: FetchPatternLow},
	{Cycle: 151, Action: FetchPatternHigh},
	{Cycle: 152, Action: IncrementHorizontal},
	{Cycle: 153, Action: RestCycle},
	{Cycle: 154, Action: FetchNametable},
	{Cycle: 155, Action: RestCycle},
	{Cycle: 156, Action: FetchAttribute},
	{Cycle: 157, Action: RestCycle},
	{Cycle: 158, Action: FetchPatternLow},
	{Cycle: 159, Action: FetchPatternHigh},
	{Cycle: 160, Action: IncrementHorizontal},
	{Cycle: 161, Action: RestCycle},
	{Cycle: 162, Action: FetchNametable},
	{Cycle: 163, Action: RestCycle},
	{Cycle: 164, Action: FetchAttribute},
	{Cycle: 165, Action: RestCycle},
	{Cycle: 166, Action: FetchPatternLow},
	{Cycle: 167, Action: FetchPatternHigh},
	{Cycle: 168, Action: IncrementHorizontal},
	{Cycle: 169, Action: RestCycle},
	{Cycle: 170, Action: FetchNametable},
	{Cycle: 171, Action: RestCycle},
	{Cycle: 172, Action: FetchAttribute},
	{Cycle: 173, Action: RestCycle},
	{Cycle: 174, Action: FetchPatternLow},
	{Cycle: 175, Action: FetchPatternHigh},
	{Cycle: 176, Action: IncrementHorizontal},
	{Cycle: 177, Action: RestCycle},
	{Cycle: 178, Action: FetchNametable},
	{Cycle: 179, Action: RestCycle},
	{Cycle: 180, Action: FetchAttribute},
	{Cycle: 181, Action: RestCycle},
	{Cycle: 182, Action: FetchPatternLow},
	{Cycle: 183, Action: FetchPatternHigh},
	{Cycle: 184, Action: IncrementHorizontal},
	{Cycle: 185, Action: RestCycle},
	{Cycle: 186, Action: FetchNametable},
	{Cycle: 187, Action: RestCycle},
	{Cycle: 188, Action: FetchAttribute},
	{Cycle: 189, Action: RestCycle},
	{Cycle: 190, Action: FetchPatternLow},
	{Cycle: 191, Action: FetchPatternHigh},
	{Cycle: 192, Action: IncrementHorizontal},
	{Cycle: 193, Action: RestCycle},
	{Cycle: 194, Action: FetchNametable},
	{Cycle: 195, Action: RestCycle},
	{Cycle: 196, Action: FetchAttribute},
	{Cycle: 197, Action: RestCycle},
	{Cycle: 198, Action: FetchPatternLow},
	{Cycle: 199, Action: FetchPatternHigh},
	{Cycle: 200, Action: IncrementHorizontal},
	{Cycle: 201, Action: RestCycle},
	{Cycle: 202, Action: FetchNametable},
	{Cycle: 203, Action: RestCycle},
	{Cycle: 204, Action: FetchAttribute},
	{Cycle: 205, Action: RestCycle},
	{Cycle: 206, Action: FetchPatternLow},
	{Cycle: 207, Action: FetchPatternHigh},
	{Cycle: 208, Action: IncrementHorizontal},
	{Cycle: 209, Action: RestCycle},
	{Cycle: 210, Action: FetchNametable},
	{Cycle: 211, Action: RestCycle},
	{Cycle: 212, Action: FetchAttribute},
	{Cycle: 213, Action: RestCycle},
	{Cycle: 214, Action: FetchPatternLow},
	{Cycle: 215, Action: FetchPatternHigh},
	{Cycle: 216, Action: IncrementHorizontal},
	{Cycle: 217, Action: RestCycle},
	{Cycle: 218, Action: FetchNametable},
	{Cycle: 219, Action: RestCycle},
	{Cycle: 220, Action: FetchAttribute},
	{Cycle: 221, Action: RestCycle},
	{Cycle: 222, Action: FetchPatternLow},
	{Cycle: 223, Action: FetchPatternHigh},
	{Cycle: 224, Action: IncrementHorizontal},
	{Cycle: 225, Action: RestCycle},
	{Cycle: 226, Action: FetchNametable},
	{Cycle: 227, Action: RestCycle},
	{Cycle: 228, Action: FetchAttribute},
	{Cycle: 229, Action: RestCycle},
	{Cycle: 230, Action: FetchPatternLow},
	{Cycle: 231, Action: FetchPatternHigh},
	{Cycle: 232, Action: IncrementHorizontal},
	{Cycle: 233, Action: RestCycle},
	{Cycle: 234, Action: FetchNametable},
	{Cycle: 235, Action: RestCycle},
	{Cycle: 236, Action: FetchAttribute},
	{Cycle: 237, Action: RestCycle},
	{Cycle: 238, Action: FetchPatternLow},
	{Cycle: 239, Action: FetchPatternHigh},
	{Cycle: 240, Action: IncrementHorizontal},
	{Cycle: 241, Action: RestCycle},
	{Cycle: 242, Action: FetchNametable},
	{Cycle: 243, Action: RestCycle},
	{Cycle: 244, Action: FetchAttribute},
	{Cycle: 245, Action: RestCycle},
	{Cycle: 246, Action: FetchPatternLow},
	{Cycle: 247, Action: FetchPatternHigh},
	{Cycle: 248, Action: IncrementHorizontal},
	{Cycle: 249, Action: RestCycle},
	{Cycle: 250, Action: FetchNametable},
	{Cycle: 251, Action: RestCycle},
	{Cycle: 252, Action: FetchAttribute},
	{Cycle: 253, Action: RestCycle},
	{Cycle: 254, Action: FetchPatternLow},
	{Cycle: 255, Action: FetchPatternHigh},
	{Cycle: 256, Action: IncrementBoth},
	{Cycle: 257, Action: TransferHorizontal},
	{Cycle: 258, Action: FetchNametable},
	{Cycle: 259, Action: RestCycle},
	{Cycle: 260, Action: FetchNametable},
	{Cycle: 261, Action: FetchSprites},
	{Cycle: 262, Action: RestCycle},
	{Cycle: 263, Action: RestCycle},
	{Cycle: 264, Action: RestCycle},
	{Cycle: 265, Action: RestCycle},
	{Cycle: 266, Action: FetchNametable},
	{Cycle: 267, Action: RestCycle},
	{Cycle: 268, Action: FetchNametable},
	{Cycle: 269, Action: RestCycle},
	{Cycle: 270, Action: RestCycle},
	{Cycle: 271, Action: RestCycle},
	{Cycle: 272, Action: RestCycle},
	{Cycle: 273, Action: RestCycle},
	{Cycle: 274, Action: FetchNametable},
	{Cycle: 275, Action: RestCycle},
	{Cycle: 276, Action: FetchNametable},
	{Cycle: 277, Action: RestCycle},
	{Cycle: 278, Action: RestCycle},
	{Cycle: 279, Action: RestCycle},
	{Cycle: 280, Action: RestCycle},
	{Cycle: 281, Action: RestCycle},
	{Cycle: 282, Action: FetchNametable},
	{Cycle: 283, Action: RestCycle},
	{Cycle: 284, Action: FetchNametable},
	{Cycle: 285, Action: RestCycle},
	{Cycle: 286, Action: RestCycle},
	{Cycle: 287, Action: RestCycle},
	{Cycle: 288, Action: RestCycle},
	{Cycle: 289, Action: RestCycle},
	{Cycle: 290, Action: FetchNametable},
	{Cycle: 291, Action: RestCycle},
	{Cycle: 292, Action: FetchNametable},
	{Cycle: 293, Action: RestCycle},
	{Cycle: 294, Action: RestCycle},
	{Cycle: 295, Action: RestCycle},
	{Cycle: 296, Action: RestCycle},
	{Cycle: 297, Action: RestCycle},
	{Cycle: 298, Action: FetchNametable},
	{Cycle: 299, Action: RestCycle},
	{Cycle: 300, Action: FetchNametable},
	{Cycle: 301, Action: RestCycle},
	{Cycle: 302, Action: RestCycle},
	{Cycle: 303, Action: RestCycle},
	{Cycle: 304, Action: RestCycle},
	{Cycle: 305, Action: RestCycle},
	{Cycle: 306, Action: FetchNametable},
	{Cycle: 307, Action: RestCycle},
	{Cycle: 308, Action: FetchNametable},
	{Cycle: 309, Action: RestCycle},
	{Cycle: 310, Action: RestCycle},
	{Cycle: 311, Action: RestCycle},
	{Cycle: 312, Action: RestCycle},
	{Cycle: 313, Action: RestCycle},
	{Cycle: 314, Action: FetchNametable},
	{Cycle: 315, Action: RestCycle},
	{Cycle: 316, Action: FetchNametable},
	{Cycle: 317, Action: RestCycle},
	{Cycle: 318, Action: RestCycle},
	{Cycle: 319, Action: RestCycle},
	{Cycle: 320, Action: RestCycle},
	{Cycle: 321, Action: RestCycle},
	{Cycle: 322, Action: FetchNametable},
	{Cycle: 323, Action: RestCycle},
	{Cycle: 324, Action: FetchAttribute},
	{Cycle: 325, Action: RestCycle},
	{Cycle: 326, Action: FetchPatternLow},
	{Cycle: 327, Action: FetchPatternHigh},
	{Cycle: 328, Action: IncrementHorizontal},
	{Cycle: 329, Action: RestCycle},
	{Cycle: 330, Action: FetchNametable},
	{Cycle: 331, Action: RestCycle},
	{Cycle: 332, Action: FetchAttribute},
	{Cycle: 333, Action: RestCycle},
	{Cycle: 334, Action: FetchPatternLow},
	{Cycle: 335, Action: FetchPatternHigh},
	{Cycle: 336, Action: IncrementHorizontal},
	{Cycle: 337, Action: RestCycle},
	{Cycle: 338, Action: FetchNametable},
	{Cycle: 339, Action: RestCycle},
	{Cycle: 340, Action: FetchNametable},
}
