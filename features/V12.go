package features

// Channel indices of the minimap layers of pysc2 v1.2
const (
	MinimapHeightMap = iota
	MinimapVisibilityMap
	MinimapCreep
	MinimapCamera
	MinimapPlayerID
	MinimapPlayerRelative
	MinimapSelected
)

// Channel indices of the screen layers of pysc2 v1.2
const (
	ScreenHeightMap = iota
	ScreenVisibilityMap
	ScreenCreep
	ScreenPower
	ScreenPlayerID
	ScreenPlayerRelative
	ScreenUnitType
	ScreenSelected
	ScreenUnitHitPoints
	ScreenUnitHitPointsRatio
	ScreenUnitEnergy
	ScreenUnitEnergyRatio
	ScreenUnitShields
	ScreenUnitShieldsRatio
	ScreenUnitDensity
	ScreenUnitDensityAA
	ScreenEffects
)

// MinimapV12 describes the minimap layer stack of pysc2 v1.2
var MinimapV12 = mustTable("minimap_v1.2", []Feature{
	{MinimapHeightMap, "height_map", Scalar, 256},
	{MinimapVisibilityMap, "visibility_map", Categorical, 4},
	{MinimapCreep, "creep", Categorical, 2},
	{MinimapCamera, "camera", Categorical, 2},
	{MinimapPlayerID, "player_id", Categorical, 17},
	{MinimapPlayerRelative, "player_relative", Categorical, 5},
	{MinimapSelected, "selected", Categorical, 2},
})

// ScreenV12 describes the screen layer stack of pysc2 v1.2
var ScreenV12 = mustTable("screen_v1.2", []Feature{
	{ScreenHeightMap, "height_map", Scalar, 256},
	{ScreenVisibilityMap, "visibility_map", Categorical, 4},
	{ScreenCreep, "creep", Categorical, 2},
	{ScreenPower, "power", Categorical, 2},
	{ScreenPlayerID, "player_id", Categorical, 17},
	{ScreenPlayerRelative, "player_relative", Categorical, 5},
	{ScreenUnitType, "unit_type", Categorical, 1850},
	{ScreenSelected, "selected", Categorical, 2},
	{ScreenUnitHitPoints, "unit_hit_points", Scalar, 1600},
	{ScreenUnitHitPointsRatio, "unit_hit_points_ratio", Scalar, 256},
	{ScreenUnitEnergy, "unit_energy", Scalar, 1000},
	{ScreenUnitEnergyRatio, "unit_energy_ratio", Scalar, 256},
	{ScreenUnitShields, "unit_shields", Scalar, 1000},
	{ScreenUnitShieldsRatio, "unit_shields_ratio", Scalar, 256},
	{ScreenUnitDensity, "unit_density", Scalar, 16},
	{ScreenUnitDensityAA, "unit_density_aa", Scalar, 256},
	{ScreenEffects, "effects", Categorical, 16},
})
