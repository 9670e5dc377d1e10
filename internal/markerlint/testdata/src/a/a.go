package a

//docmark:doc
type Widget struct{}

//docmark:doc filename="guides/render.md"
func (w *Widget) Render() {}

//docmark:doc
func Helper() {}

func plain() {}

var _ = plain
