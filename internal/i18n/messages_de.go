package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	message.SetString(lang, ChiefRequiredKey, "Chef muss ausgewählt werden.")
	message.SetString(lang, ViceRequiredKey, "Vize muss ausgewählt werden.")
	message.SetString(lang, PartnerRequiredKey, "Partner muss ausgewählt werden.")
	message.SetString(lang, RolesDistinctKey, "Chef, Vize und Partner müssen verschiedene Spieler sein.")
	message.SetString(lang, ChiefTrumpRequiredKey, "Chef-Trumpf muss ausgewählt werden.")
	message.SetString(lang, ViceTrumpRequiredKey, "Vize-Trumpf muss ausgewählt werden.")
	message.SetString(lang, ViceTrumpNoneRequiredKey, "Vize-Trumpf muss Kein Trumpf sein, wenn Vize Keiner ist.")
	message.SetString(lang, ViceTrumpNoneForbiddenKey, "Vize-Trumpf kann nur Kein Trumpf sein, wenn Vize Keiner ist.")
	message.SetString(lang, ViceTrumpSameKey, "Vize-Trumpf muss sich vom Chef-Trumpf unterscheiden.")
	message.SetString(lang, BidRequiredKey, "Gebot des Chefs muss ausgewählt werden.")
	message.SetString(lang, BidRangeKey, "Das Gebot des Chefs muss zwischen 1 und %d liegen.")
	message.SetString(lang, CardPointsSumKey, "Kartenpunkte müssen %d ergeben (aktuell %d).")
	message.SetString(lang, CardPointsIncompleteKey, "Alle Kartenpunkte müssen ausgefüllt sein.")
	message.SetString(lang, TiedMinKey, "Mindestens zwei Spieler im Gleichstand müssen ausgewählt werden.")
	message.SetString(lang, ProvocateurRequiredKey, "Provokateur muss ausgewählt werden.")
	message.SetString(lang, ProvocateurNotTiedKey, "Provokateur muss einer der Spieler im Gleichstand sein.")
	message.SetString(lang, CardsBidRequiredKey, "Anzahl gebotener Karten muss eingegeben werden.")
	message.SetString(lang, UnknownRoundKey, "Unbekannte Rundenart.")

	message.SetString(lang, SheetTitleKey, "Mü-Punkteblatt")
	message.SetString(lang, RoundKey, "Runde %d")
	message.SetString(lang, RoundStalemateKey, "Runde %d (Eklat)")
	message.SetString(lang, ChiefKey, "Chef")
	message.SetString(lang, PartnerKey, "Partner")
	message.SetString(lang, ViceKey, "Vize")
	message.SetString(lang, ChiefTrumpKey, "Chef-Trumpf")
	message.SetString(lang, ViceTrumpKey, "Vize-Trumpf")
	message.SetString(lang, BidKey, "Gebot")
	message.SetString(lang, TargetKey, "Ziel")
	message.SetString(lang, TiedKey, "Gleichstand")
	message.SetString(lang, ProvocateurKey, "Provokateur")
	message.SetString(lang, CardsBidKey, "Gebotene Karten")
	message.SetString(lang, PointsKey, "Punkte")
	message.SetString(lang, BonusKey, "Bonus")
	message.SetString(lang, SumKey, "Summe")
	message.SetString(lang, TotalKey, "Gesamtsumme")
	message.SetString(lang, NoneKey, "Keiner")
	message.SetString(lang, DefaultPlayerKey, "Spieler %d")
	message.SetString(lang, RoundIncompleteKey, "Bitte zuerst unvollständige oder fehlerhafte Runden korrigieren")

	message.SetString(lang, TrumpRedKey, "Rot")
	message.SetString(lang, TrumpBlueKey, "Blau")
	message.SetString(lang, TrumpPurpleKey, "Lila")
	message.SetString(lang, TrumpYellowKey, "Gelb")
	message.SetString(lang, TrumpGreenKey, "Grün")
	message.SetString(lang, TrumpNoneKey, "Kein Trumpf")
}
