package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, ChiefRequiredKey, "Chief must be selected.")
	message.SetString(lang, ViceRequiredKey, "Vice must be selected.")
	message.SetString(lang, PartnerRequiredKey, "Partner must be selected.")
	message.SetString(lang, RolesDistinctKey, "Chief, Vice, and Partner must be different players.")
	message.SetString(lang, ChiefTrumpRequiredKey, "Chief's trump must be selected.")
	message.SetString(lang, ViceTrumpRequiredKey, "Vice's trump must be selected.")
	message.SetString(lang, ViceTrumpNoneRequiredKey, "Vice's trump must be None when Vice is None.")
	message.SetString(lang, ViceTrumpNoneForbiddenKey, "Vice's trump can only be None when Vice is None.")
	message.SetString(lang, ViceTrumpSameKey, "Vice's trump must be different from Chief's trump.")
	message.SetString(lang, BidRequiredKey, "Chief's bid must be selected.")
	message.SetString(lang, BidRangeKey, "Chief's bid must be between 1 and %d.")
	message.SetString(lang, CardPointsSumKey, "Card points must sum to %d (currently %d).")
	message.SetString(lang, CardPointsIncompleteKey, "All card points must be filled in.")
	message.SetString(lang, TiedMinKey, "At least two tied players must be selected.")
	message.SetString(lang, ProvocateurRequiredKey, "Provocateur must be selected.")
	message.SetString(lang, ProvocateurNotTiedKey, "Provocateur must be one of the tied players.")
	message.SetString(lang, CardsBidRequiredKey, "Number of cards bid must be entered.")
	message.SetString(lang, UnknownRoundKey, "Unknown round type.")

	message.SetString(lang, SheetTitleKey, "Mü Score Sheet")
	message.SetString(lang, RoundKey, "Round %d")
	message.SetString(lang, RoundStalemateKey, "Round %d (Stalemate)")
	message.SetString(lang, ChiefKey, "Chief")
	message.SetString(lang, PartnerKey, "Partner")
	message.SetString(lang, ViceKey, "Vice")
	message.SetString(lang, ChiefTrumpKey, "Chief's trump")
	message.SetString(lang, ViceTrumpKey, "Vice's trump")
	message.SetString(lang, BidKey, "Bid")
	message.SetString(lang, TargetKey, "Target")
	message.SetString(lang, TiedKey, "Tied")
	message.SetString(lang, ProvocateurKey, "Provocateur")
	message.SetString(lang, CardsBidKey, "Cards bid")
	message.SetString(lang, PointsKey, "Points")
	message.SetString(lang, BonusKey, "Bonus")
	message.SetString(lang, SumKey, "Sum")
	message.SetString(lang, TotalKey, "Total")
	message.SetString(lang, NoneKey, "None")
	message.SetString(lang, DefaultPlayerKey, "Player %d")
	message.SetString(lang, RoundIncompleteKey, "Please fix incomplete or incorrect rounds first")

	message.SetString(lang, TrumpRedKey, "Red")
	message.SetString(lang, TrumpBlueKey, "Blue")
	message.SetString(lang, TrumpPurpleKey, "Purple")
	message.SetString(lang, TrumpYellowKey, "Yellow")
	message.SetString(lang, TrumpGreenKey, "Green")
	message.SetString(lang, TrumpNoneKey, "None")
}
