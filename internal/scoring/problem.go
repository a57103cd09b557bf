package scoring

// ProblemKind names a validation rule a round breaks.
type ProblemKind string

const (
	MissingRole           ProblemKind = "missing-role"
	DuplicateRole         ProblemKind = "duplicate-role"
	MissingTrump          ProblemKind = "missing-trump"
	InvalidTrumpPairing   ProblemKind = "invalid-trump-pairing"
	MissingBid            ProblemKind = "missing-bid"
	BidOutOfRange         ProblemKind = "bid-out-of-range"
	CardPointsIncomplete  ProblemKind = "card-points-incomplete"
	CardPointsSumMismatch ProblemKind = "card-points-sum-mismatch"
	MissingTiedPlayers    ProblemKind = "missing-tied-players"
	MissingProvocateur    ProblemKind = "missing-provocateur"
	ProvocateurNotTied    ProblemKind = "provocateur-not-tied"
	MissingCardsBid       ProblemKind = "missing-cards-bid"
	UnknownRound          ProblemKind = "unknown-round"
)

// ProblemKinds lists every kind, in rule order.
var ProblemKinds = []ProblemKind{
	MissingRole, DuplicateRole, MissingTrump, InvalidTrumpPairing,
	MissingBid, BidOutOfRange, CardPointsIncomplete, CardPointsSumMismatch,
	MissingTiedPlayers, MissingProvocateur, ProvocateurNotTied, MissingCardsBid,
	UnknownRound,
}

type Role string

const (
	RoleChief   Role = "chief"
	RolePartner Role = "partner"
	RoleVice    Role = "vice"
)

// Pairing tells which vice trump constraint was broken.
type Pairing string

const (
	PairingNoneRequired  Pairing = "vice-none-required"
	PairingNoneForbidden Pairing = "vice-none-forbidden"
	PairingSameAsChief   Pairing = "same-as-chief"
)

// Problem is a structured validation error. Args carries the numbers a
// message needs: the maximum bid for BidOutOfRange, the expected and actual
// totals for CardPointsSumMismatch. Rendering it is left to the caller.
type Problem struct {
	Kind    ProblemKind `json:"kind"`
	Role    Role        `json:"role,omitempty"`
	Pairing Pairing     `json:"pairing,omitempty"`
	Args    []int       `json:"args,omitempty"`
}
