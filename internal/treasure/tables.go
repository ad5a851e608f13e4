package treasure

import "github.com/samdwyer/dndtreasure/internal/dice"

// band is one d100 range of a level table row.
type band[T comparable] struct {
	min, max int
	count    dice.Dice
	outcome  T
}

func (b band[T]) matches(roll int) bool {
	return b.min <= roll && roll <= b.max
}

// find returns the band containing roll.
func find[T comparable](bands []band[T], roll int) (band[T], bool) {
	for _, b := range bands {
		if b.matches(roll) {
			return b, true
		}
	}
	return band[T]{}, false
}

type goodsKind int

const (
	goodsNone goodsKind = iota
	goodsGem
	goodsArt
)

type itemGrade int

const (
	gradeNone itemGrade = iota
	gradeMundane
	gradeMinor
	gradeMedium
	gradeMajor
)

func (g itemGrade) power() Power {
	switch g {
	case gradeMedium:
		return Medium
	case gradeMajor:
		return Major
	default:
		return Minor
	}
}

var (
	d     = dice.Of
	fixed = dice.Fixed
	zero  = dice.Dice{}
)

// coinTable holds one row per level. The outcome is the denomination code;
// an empty code means no coins.
var coinTable = [MaxLevel][]band[string]{
	{ // 1
		{1, 14, zero, ""},
		{15, 29, d(1, 6).Times(1000), "cp"},
		{30, 52, d(1, 8).Times(100), "sp"},
		{53, 95, d(2, 8).Times(10), "gp"},
		{96, 100, d(1, 4).Times(10), "pp"},
	},
	{ // 2
		{1, 13, zero, ""},
		{14, 23, d(1, 10).Times(1000), "cp"},
		{24, 43, d(2, 10).Times(100), "sp"},
		{44, 95, d(4, 10).Times(10), "gp"},
		{96, 100, d(2, 8).Times(10), "pp"},
	},
	{ // 3
		{1, 11, zero, ""},
		{12, 21, d(2, 10).Times(1000), "cp"},
		{22, 41, d(4, 8).Times(100), "sp"},
		{42, 95, d(1, 4).Times(100), "gp"},
		{96, 100, d(1, 10).Times(10), "pp"},
	},
	{ // 4
		{1, 11, zero, ""},
		{12, 21, d(3, 10).Times(1000), "cp"},
		{22, 41, d(4, 12).Times(1000), "sp"},
		{42, 95, d(1, 6).Times(100), "gp"},
		{96, 100, d(1, 8).Times(10), "pp"},
	},
	{ // 5
		{1, 10, zero, ""},
		{11, 19, d(1, 4).Times(10000), "cp"},
		{20, 38, d(1, 6).Times(1000), "sp"},
		{39, 95, d(1, 8).Times(100), "gp"},
		{96, 100, d(1, 10).Times(10), "pp"},
	},
	{ // 6
		{1, 10, zero, ""},
		{11, 18, d(1, 6).Times(10000), "cp"},
		{19, 37, d(1, 8).Times(1000), "sp"},
		{38, 95, d(1, 10).Times(100), "gp"},
		{96, 100, d(1, 12).Times(10), "pp"},
	},
	{ // 7
		{1, 11, zero, ""},
		{12, 18, d(1, 10).Times(10000), "cp"},
		{19, 35, d(1, 12).Times(1000), "sp"},
		{36, 93, d(2, 6).Times(100), "gp"},
		{94, 100, d(3, 4).Times(10), "pp"},
	},
	{ // 8
		{1, 10, zero, ""},
		{11, 15, d(1, 12).Times(10000), "cp"},
		{16, 29, d(2, 6).Times(1000), "sp"},
		{30, 87, d(2, 8).Times(100), "gp"},
		{88, 100, d(3, 6).Times(10), "pp"},
	},
	{ // 9
		{1, 10, zero, ""},
		{11, 15, d(2, 6).Times(10000), "cp"},
		{16, 29, d(2, 8).Times(1000), "sp"},
		{30, 85, d(5, 4).Times(100), "gp"},
		{86, 100, d(2, 12).Times(10), "pp"},
	},
	{ // 10
		{1, 10, zero, ""},
		{11, 24, d(2, 10).Times(1000), "sp"},
		{25, 79, d(6, 4).Times(100), "gp"},
		{80, 100, d(5, 6).Times(10), "pp"},
	},
	{ // 11
		{1, 8, zero, ""},
		{9, 14, d(3, 10).Times(1000), "sp"},
		{15, 75, d(4, 8).Times(100), "gp"},
		{76, 100, d(4, 10).Times(10), "pp"},
	},
	{ // 12
		{1, 8, zero, ""},
		{9, 14, d(3, 12).Times(1000), "sp"},
		{15, 75, d(1, 4).Times(1000), "gp"},
		{76, 100, d(1, 4).Times(100), "pp"},
	},
	{ // 13
		{1, 8, zero, ""},
		{9, 75, d(1, 4).Times(1000), "gp"},
		{76, 100, d(1, 10).Times(100), "pp"},
	},
	{ // 14
		{1, 8, zero, ""},
		{9, 75, d(1, 6).Times(1000), "gp"},
		{76, 100, d(1, 12).Times(100), "pp"},
	},
	{ // 15
		{1, 3, zero, ""},
		{4, 74, d(1, 8).Times(1000), "gp"},
		{75, 100, d(3, 4).Times(100), "pp"},
	},
	{ // 16
		{1, 3, zero, ""},
		{4, 74, d(1, 12).Times(1000), "gp"},
		{75, 100, d(3, 4).Times(100), "pp"},
	},
	{ // 17
		{1, 3, zero, ""},
		{4, 68, d(3, 4).Times(1000), "gp"},
		{69, 100, d(2, 10).Times(100), "pp"},
	},
	{ // 18
		{1, 2, zero, ""},
		{3, 65, d(3, 6).Times(1000), "gp"},
		{66, 100, d(5, 4).Times(100), "pp"},
	},
	{ // 19
		{1, 2, zero, ""},
		{3, 65, d(3, 8).Times(1000), "gp"},
		{66, 100, d(3, 10).Times(100), "pp"},
	},
	{ // 20
		{1, 2, zero, ""},
		{3, 65, d(4, 8).Times(1000), "gp"},
		{66, 100, d(4, 10).Times(100), "pp"},
	},
}

// goodsTable holds one row per level. count is the number of gems or art
// objects produced.
var goodsTable = [MaxLevel][]band[goodsKind]{
	{{1, 90, zero, goodsNone}, {91, 95, fixed(1), goodsGem}, {96, 100, fixed(1), goodsArt}},
	{{1, 81, zero, goodsNone}, {82, 95, d(1, 3), goodsGem}, {96, 100, d(1, 3), goodsArt}},
	{{1, 77, zero, goodsNone}, {78, 95, d(1, 3), goodsGem}, {96, 100, d(1, 3), goodsArt}},
	{{1, 70, zero, goodsNone}, {71, 95, d(1, 4), goodsGem}, {96, 100, d(1, 3), goodsArt}},
	{{1, 60, zero, goodsNone}, {61, 95, d(1, 4), goodsGem}, {96, 100, d(1, 4), goodsArt}},
	{{1, 56, zero, goodsNone}, {57, 92, d(1, 4), goodsGem}, {93, 100, d(1, 4), goodsArt}},
	{{1, 48, zero, goodsNone}, {49, 88, d(1, 4), goodsGem}, {89, 100, d(1, 4), goodsArt}},
	{{1, 45, zero, goodsNone}, {46, 85, d(1, 6), goodsGem}, {86, 100, d(1, 4), goodsArt}},
	{{1, 40, zero, goodsNone}, {41, 80, d(1, 8), goodsGem}, {81, 100, d(1, 4), goodsArt}},
	{{1, 35, zero, goodsNone}, {36, 79, d(1, 8), goodsGem}, {80, 100, d(1, 6), goodsArt}},
	{{1, 24, zero, goodsNone}, {25, 74, d(1, 10), goodsGem}, {75, 100, d(1, 6), goodsArt}},
	{{1, 17, zero, goodsNone}, {18, 70, d(1, 10), goodsGem}, {71, 100, d(1, 8), goodsArt}},
	{{1, 11, zero, goodsNone}, {12, 66, d(1, 12), goodsGem}, {67, 100, d(1, 10), goodsArt}},
	{{1, 11, zero, goodsNone}, {12, 66, d(2, 8), goodsGem}, {67, 100, d(2, 6), goodsArt}},
	{{1, 9, zero, goodsNone}, {10, 65, d(2, 10), goodsGem}, {66, 100, d(2, 8), goodsArt}},
	{{1, 7, zero, goodsNone}, {8, 64, d(4, 6), goodsGem}, {65, 100, d(2, 10), goodsArt}},
	{{1, 4, zero, goodsNone}, {5, 63, d(4, 8), goodsGem}, {64, 100, d(3, 8), goodsArt}},
	{{1, 4, zero, goodsNone}, {5, 54, d(3, 12), goodsGem}, {55, 100, d(3, 10), goodsArt}},
	{{1, 3, zero, goodsNone}, {4, 50, d(6, 6), goodsGem}, {51, 100, d(6, 6), goodsArt}},
	{{1, 2, zero, goodsNone}, {3, 38, d(4, 10), goodsGem}, {39, 100, d(7, 6), goodsArt}},
}

// itemTable holds one row per level. count is the number of items of the
// band's grade.
var itemTable = [MaxLevel][]band[itemGrade]{
	{{1, 71, zero, gradeNone}, {72, 95, fixed(1), gradeMundane}, {96, 100, fixed(1), gradeMinor}},
	{{1, 49, zero, gradeNone}, {50, 85, fixed(1), gradeMundane}, {86, 100, fixed(1), gradeMinor}},
	{{1, 49, zero, gradeNone}, {50, 79, d(1, 3), gradeMundane}, {80, 100, fixed(1), gradeMinor}},
	{{1, 42, zero, gradeNone}, {43, 62, d(1, 4), gradeMundane}, {63, 100, fixed(1), gradeMinor}},
	{{1, 57, zero, gradeNone}, {58, 67, d(1, 4), gradeMundane}, {68, 100, d(1, 3), gradeMinor}},
	{
		{1, 54, zero, gradeNone},
		{55, 59, d(1, 4), gradeMundane},
		{60, 99, d(1, 3), gradeMinor},
		{100, 100, fixed(1), gradeMedium},
	},
	{{1, 51, zero, gradeNone}, {52, 97, d(1, 3), gradeMinor}, {98, 100, fixed(1), gradeMedium}},
	{{1, 48, zero, gradeNone}, {49, 96, d(1, 4), gradeMinor}, {97, 100, fixed(1), gradeMedium}},
	{{1, 43, zero, gradeNone}, {44, 91, d(1, 4), gradeMinor}, {92, 100, fixed(1), gradeMedium}},
	{
		{1, 40, zero, gradeNone},
		{41, 88, d(1, 4), gradeMinor},
		{89, 99, fixed(1), gradeMedium},
		{100, 100, fixed(1), gradeMajor},
	},
	{
		{1, 31, zero, gradeNone},
		{32, 84, d(1, 4), gradeMinor},
		{85, 98, fixed(1), gradeMedium},
		{99, 100, fixed(1), gradeMajor},
	},
	{
		{1, 27, zero, gradeNone},
		{28, 82, d(1, 6), gradeMinor},
		{83, 97, fixed(1), gradeMedium},
		{98, 100, fixed(1), gradeMajor},
	},
	{
		{1, 19, zero, gradeNone},
		{20, 73, d(1, 6), gradeMinor},
		{74, 95, fixed(1), gradeMedium},
		{96, 100, fixed(1), gradeMajor},
	},
	{
		{1, 19, zero, gradeNone},
		{20, 58, d(1, 6), gradeMinor},
		{59, 92, fixed(1), gradeMedium},
		{93, 100, fixed(1), gradeMajor},
	},
	{
		{1, 11, zero, gradeNone},
		{12, 46, d(1, 10), gradeMinor},
		{47, 90, fixed(1), gradeMedium},
		{91, 100, fixed(1), gradeMajor},
	},
	{
		{1, 40, zero, gradeNone},
		{41, 46, d(1, 10), gradeMinor},
		{47, 90, d(1, 3), gradeMedium},
		{91, 100, fixed(1), gradeMajor},
	},
	{{1, 33, zero, gradeNone}, {34, 83, d(1, 3), gradeMedium}, {84, 100, fixed(1), gradeMajor}},
	{{1, 24, zero, gradeNone}, {25, 80, d(1, 4), gradeMedium}, {81, 100, fixed(1), gradeMajor}},
	{{1, 4, zero, gradeNone}, {5, 70, d(1, 4), gradeMedium}, {71, 100, fixed(1), gradeMajor}},
	{{1, 25, zero, gradeNone}, {26, 65, d(1, 4), gradeMedium}, {66, 100, d(1, 3), gradeMajor}},
}

// categoryTable maps a d100 roll to an item category per power. It does not
// depend on level.
var categoryTable = map[Power][]band[string]{
	Minor: {
		{1, 4, zero, TypeArmor},
		{5, 9, zero, TypeWeapon},
		{10, 44, zero, TypePotion},
		{45, 46, zero, TypeRing},
		{47, 81, zero, TypeScroll},
		{82, 91, zero, TypeWand},
		{92, 100, zero, TypeWondrous},
	},
	Medium: {
		{1, 10, zero, TypeArmor},
		{11, 20, zero, TypeWeapon},
		{21, 30, zero, TypePotion},
		{31, 40, zero, TypeRing},
		{41, 50, zero, TypeRod},
		{51, 65, zero, TypeScroll},
		{66, 68, zero, TypeStaff},
		{69, 83, zero, TypeWand},
		{84, 100, zero, TypeWondrous},
	},
	Major: {
		{1, 10, zero, TypeArmor},
		{11, 20, zero, TypeWeapon},
		{21, 25, zero, TypePotion},
		{26, 35, zero, TypeRing},
		{36, 45, zero, TypeRod},
		{46, 55, zero, TypeScroll},
		{56, 75, zero, TypeStaff},
		{76, 80, zero, TypeWand},
		{81, 100, zero, TypeWondrous},
	},
}

// tier is one value band of the gem or art tier table.
type tier struct {
	upTo  int // inclusive upper bound of the d100 roll
	value dice.Dice
}

var gemTiers = []tier{
	{25, d(4, 4)},
	{50, d(2, 4).Times(10)},
	{70, d(4, 4).Times(10)},
	{90, d(2, 4).Times(100)},
	{99, d(4, 4).Times(100)},
	{100, d(2, 4).Times(1000)},
}

var artTiers = []tier{
	{10, d(1, 10).Times(10)},
	{25, d(3, 6).Times(10)},
	{40, d(1, 6).Times(100)},
	{50, d(1, 10).Times(100)},
	{60, d(2, 6).Times(100)},
	{70, d(3, 6).Times(100)},
	{80, d(4, 6).Times(100)},
	{85, d(5, 6).Times(100)},
	{90, d(1, 4).Times(1000)},
	{95, d(1, 6).Times(1000)},
	{99, d(2, 4).Times(1000)},
	{100, d(2, 6).Times(1000)},
}

// tierFor returns the 1-based tier index for roll.
func tierFor(tiers []tier, roll int) (int, tier) {
	for i, t := range tiers {
		if roll <= t.upTo {
			return i + 1, t
		}
	}
	return len(tiers), tiers[len(tiers)-1]
}
