package room

import (
	"math/rand"
	"sync"
	"time"
)

const (
	roomNoLen = 6
)

// Number is the short table number players read off the score keeper
// to reopen a running game.
type Number string

type numberManager struct {
	lock sync.Mutex
	rnd  *rand.Rand
}

var rn *numberManager
var numbers = [...]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

func init() {
	rn = &numberManager{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (rn *numberManager) next(taken func(Number) bool) Number {
	no := make([]byte, roomNoLen)
	rn.lock.Lock()
	defer rn.lock.Unlock()

	for {
		for i := 0; i < roomNoLen; i++ {
			no[i] = numbers[rn.rnd.Intn(10)]
		}
		temp := Number(no)
		if taken == nil || !taken(temp) {
			return temp
		}
	}
}

// Next returns a fresh table number; taken reports numbers already in use.
func Next(taken func(Number) bool) Number {
	return rn.next(taken)
}

func (n Number) String() string {
	return string(n)
}
