// Package scenes holds the windowed hosts that drive a match from the
// keyboard and draw it.
package scenes

import (
	"strings"

	"github.com/automoto/octagon/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var keysByName map[string]ebiten.Key

func init() {
	keysByName = make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keysByName[strings.ToLower(k.String())] = k
	}
}

// heldKeys samples the named keys from the keyboard. Names that ebiten does
// not know are never held.
func heldKeys(names []string) components.Keys {
	held := components.Keys{}
	for _, name := range names {
		if k, ok := keysByName[strings.ToLower(name)]; ok && ebiten.IsKeyPressed(k) {
			held[name] = true
		}
	}
	return held
}
