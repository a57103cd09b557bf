package i18n

// Problem messages.
const (
	ChiefRequiredKey          = "err.chief_required"
	ViceRequiredKey           = "err.vice_required"
	PartnerRequiredKey        = "err.partner_required"
	RolesDistinctKey          = "err.roles_distinct"
	ChiefTrumpRequiredKey     = "err.chief_trump_required"
	ViceTrumpRequiredKey      = "err.vice_trump_required"
	ViceTrumpNoneRequiredKey  = "err.vice_trump_none_required"
	ViceTrumpNoneForbiddenKey = "err.vice_trump_none_forbidden"
	ViceTrumpSameKey          = "err.vice_trump_same"
	BidRequiredKey            = "err.bid_required"
	BidRangeKey               = "err.bid_range"
	CardPointsSumKey          = "err.card_points_sum"
	CardPointsIncompleteKey   = "err.card_points_incomplete"
	TiedMinKey                = "err.tied_min"
	ProvocateurRequiredKey    = "err.provocateur_required"
	ProvocateurNotTiedKey     = "err.provocateur_not_tied"
	CardsBidRequiredKey       = "err.cards_bid_required"
	UnknownRoundKey           = "err.unknown_round"
)

// Score sheet labels.
const (
	SheetTitleKey      = "sheet.title"
	RoundKey           = "sheet.round"
	RoundStalemateKey  = "sheet.round_stalemate"
	ChiefKey           = "sheet.chief"
	PartnerKey         = "sheet.partner"
	ViceKey            = "sheet.vice"
	ChiefTrumpKey      = "sheet.chief_trump"
	ViceTrumpKey       = "sheet.vice_trump"
	BidKey             = "sheet.bid"
	TargetKey          = "sheet.target"
	TiedKey            = "sheet.tied"
	ProvocateurKey     = "sheet.provocateur"
	CardsBidKey        = "sheet.cards_bid"
	PointsKey          = "sheet.points"
	BonusKey           = "sheet.bonus"
	SumKey             = "sheet.sum"
	TotalKey           = "sheet.total"
	NoneKey            = "sheet.none"
	DefaultPlayerKey   = "sheet.default_player"
	RoundIncompleteKey = "sheet.round_incomplete"
	TrumpRedKey        = "trump.red"
	TrumpBlueKey       = "trump.blue"
	TrumpPurpleKey     = "trump.purple"
	TrumpYellowKey     = "trump.yellow"
	TrumpGreenKey      = "trump.green"
	TrumpNoneKey       = "trump.none"
)
