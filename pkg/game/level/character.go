package level

// Asset paths, relative to the asset directory
const (
	AssetBackground = "img/po.png"
	AssetMenuMusic  = "Audio/debut.mp3"
	AssetGameMusic  = "Audio/rr.mp3"
)

// Character is a playable avatar. Each one walks towards its own exit picture.
type Character struct {
	Key        string // Translation key of the name
	Sprite     string // Player texture
	ExitSprite string // Texture drawn on the exit cell
}

// Characters lists the selectable characters in menu order
var Characters = []Character{
	{Key: "CHARACTER_MOUSE", Sprite: "img/ms.png", ExitSprite: "img/jnn.png"},
	{Key: "CHARACTER_MAN", Sprite: "img/hm.png", ExitSprite: "img/fm.png"},
	{Key: "CHARACTER_CAT", Sprite: "img/c.png", ExitSprite: "img/sc.png"},
}

// CharacterAt returns the character for a menu index, clamped to the table
func CharacterAt(index int) Character {
	if index < 0 {
		index = 0
	}
	if index >= len(Characters) {
		index = len(Characters) - 1
	}
	return Characters[index]
}

// Textures returns every texture path the game loads at start-up
func Textures() []string {
	paths := []string{AssetBackground}
	for _, c := range Characters {
		paths = append(paths, c.Sprite)
	}
	for _, c := range Characters {
		paths = append(paths, c.ExitSprite)
	}
	return paths
}
