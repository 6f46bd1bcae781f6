//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/chromatic-surge/audio"
	"github.com/simukka/chromatic-surge/common"
	"github.com/simukka/chromatic-surge/game"
)

func main() {
	common.EnableDebug = js.Global.Get("location").Get("search").String() == "?debug"

	engine := audio.NewEngine(audio.WebAudio())
	seed := uint32(js.Global.Get("Date").Call("now").Int64())

	browser, err := game.NewBrowser("game", engine, seed)
	if err != nil {
		panic(err)
	}
	browser.Run()

	// Expose the session for the console.
	js.Global.Set("ChromaticSurge", map[string]interface{}{
		"state": func() string {
			return browser.Session.State().String()
		},
		"seed": func() uint32 {
			return browser.Session.World.RNG.Seed()
		},
		"toggleStats": func() {
			browser.Session.Stats.Toggle()
		},
	})

	select {}
}
