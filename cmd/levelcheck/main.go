package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/ecs/entity"
	"github.com/milk9111/jewelrun/ecs/system"
	"github.com/milk9111/jewelrun/levels"
	"github.com/milk9111/jewelrun/prefabs"
)

func main() {
	verbose := flag.Bool("v", false, "print a summary of every level")
	flag.Parse()

	specs, err := entity.LoadSpecs()
	if err != nil {
		log.Fatal(err)
	}
	if err := checkScript(specs.Jewel.Script); err != nil {
		log.Fatal(err)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = levels.Names()
	}

	failed := 0
	for _, name := range names {
		problems, err := checkLevel(name, specs, *verbose)
		if err != nil {
			fmt.Printf("%s: %v\n", name, err)
			failed++
			continue
		}
		for _, p := range problems {
			fmt.Printf("%s: %s\n", name, p)
		}
		if len(problems) > 0 {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func checkScript(name string) error {
	if name == "" {
		return nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return err
	}
	msg, err := system.RunCompletionScript(src, 1, 1)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Printf("levelcheck: %s ok: %q", name, msg)
	return nil
}

// checkLevel builds the level into a throwaway world and reports spawn,
// jewel and checkpoint placements buried in solid geometry.
func checkLevel(name string, specs *entity.Specs, verbose bool) ([]string, error) {
	lvl, err := levels.Load(name)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	scene, err := entity.BuildScene(w, lvl, specs, entity.Config{Silent: true})
	if err != nil {
		return nil, err
	}
	system.NewColliderSyncSystem().Update(w)
	pw := w.PhysicsWorld()

	solids := component.MaskExcept(component.LayerPlayer, component.LayerCheckpoint, component.LayerCollectible, component.LayerHazard)
	buried := func(box ecs.AABB) bool {
		for _, c := range pw.Overlaps(box, solids) {
			if c.Solid {
				return true
			}
		}
		return false
	}

	var problems []string
	if box, ok := pw.Box(scene.Player); ok && buried(box) {
		problems = append(problems, "spawn overlaps solid geometry")
	}
	for i, j := range lvl.Jewels {
		if buried(ecs.NewAABB(j.Vec(), specs.Jewel.Half.Vec())) {
			problems = append(problems, fmt.Sprintf("jewel %d is inside solid geometry", i))
		}
	}
	for i, c := range lvl.Checkpoints {
		if buried(ecs.NewAABB(c.RespawnPoint(), specs.Player.Half.Vec())) {
			problems = append(problems, fmt.Sprintf("checkpoint %d respawns inside solid geometry", i))
		}
	}

	if verbose {
		fmt.Printf("%s: %d boxes, %d jewels, %d checkpoints, %d hazards, %d colliders\n",
			lvl.Name, len(lvl.Boxes), len(lvl.Jewels), len(lvl.Checkpoints), len(lvl.Hazards), pw.Len())
	}
	return problems, nil
}
