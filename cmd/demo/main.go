/*
This is an example of application that will use the zalgebra package to
compose model/view/projection matrices from a scene description and
print them, reloading whenever the scene file changes on disk.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/doytsujin/zalgebra"
	"github.com/doytsujin/zalgebra/camera"
	"github.com/doytsujin/zalgebra/core"
	"github.com/doytsujin/zalgebra/scene"
)

func main() {
	scenePath := flag.String("scene", "assets/demo_scene.toml", "path to the scene description file")
	flag.Parse()

	s, err := scene.Load(*scenePath)
	if err != nil {
		core.LogFatal("loading scene: %v", err)
	}
	printScene(s)
	flyAround(s)

	watcher, err := scene.NewWatcher(func(path string) {
		reloaded, err := scene.Load(path)
		if err != nil {
			core.LogError("reloading scene: %v", err)
			return
		}
		printScene(reloaded)
	})
	if err != nil {
		core.LogFatal("creating watcher: %v", err)
	}
	if err := watcher.Watch(*scenePath); err != nil {
		core.LogFatal("watching %s: %v", *scenePath, err)
	}
	watcher.Start()
	core.LogInfo("watching %s, edit it to recompute (ctrl-c to quit)", *scenePath)

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh

	if err := watcher.Close(); err != nil {
		core.LogError("closing watcher: %v", err)
	}
}

func printScene(s *scene.Scene) {
	core.LogInfo("view:\n%v", s.View)
	core.LogInfo("projection:\n%v", s.Projection)
	for _, node := range s.Nodes() {
		core.LogInfo("node %q (%s)\nmodel:\n%vmvp:\n%v",
			node.Name, node.ID, node.Transform.GetWorld(), s.ModelViewProjection(node))
	}
}

// flyAround steers a free camera a few steps and prints the resulting
// view matrices, as a quick smoke run of the camera component.
func flyAround(s *scene.Scene) {
	fly := camera.New[float32]()
	fly.SetPosition(zalgebra.NewVec3[float32](0, 1, 5))
	fly.Yaw(15)
	fly.MoveForward(2)
	core.LogDebug("fly camera view after yaw+move:\n%v", fly.GetView())

	fly.Pitch(200) // clamped at 89 degrees
	core.LogDebug("fly camera pitch clamped to %v degrees", fly.GetEulerRotation().X)
}
