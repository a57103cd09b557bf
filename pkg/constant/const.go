package constant

import "strings"

// 玩家人数
const (
	MinPlayers = 3
	MaxPlayers = 6
)

// 玩家名字最大长度(rune)
const MaxNameLength = 32

type RoundKind int

const (
	//普通局: 叫牌/将牌/搭档
	RoundNormal RoundKind = iota
	//僵局: 平分玩家押牌
	RoundStalemate
)

var stringify = [...]string{
	RoundNormal:    "normal",
	RoundStalemate: "stalemate",
}

func (k RoundKind) String() string {
	if k < 0 || int(k) >= len(stringify) {
		return "unknown"
	}
	return stringify[k]
}

// ParseRoundKind 解析局类型, 空字符串视为普通局
func ParseRoundKind(s string) (RoundKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return RoundNormal, true
	case "stalemate":
		return RoundStalemate, true
	}
	return RoundNormal, false
}
