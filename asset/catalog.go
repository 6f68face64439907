package asset

// DefaultCatalogYAML returns the built-in enemy catalog
// Sprite sizes are source-sheet pixels per frame; sheets hold last_frame+1 frames
const DefaultCatalogYAML = `
enemies:
  - name: bat
    kind: shake
    sprite_width: 293
    sprite_height: 155
    last_frame: 4
    max_speed: 10
    asset: enemy1.png
    color: "#7a3cc8"

  - name: bat2
    kind: left_sine
    sprite_width: 266
    sprite_height: 188
    last_frame: 4
    max_speed: 10
    asset: enemy2.png
    color: "#c83c5a"

  - name: ghost
    kind: lissajous
    sprite_width: 218
    sprite_height: 177
    last_frame: 4
    max_speed: 10
    asset: enemy3.png
    color: "#c8d2f0"

  - name: wheel
    kind: wander
    sprite_width: 213
    sprite_height: 213
    last_frame: 7
    max_speed: 10
    asset: enemy4.png
    color: "#e6a01e"
`
