package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/simplevector"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	for i := 0; i < 10000; i++ {
		v := simplevector.New[int]()
		for j := 0; j < 512; j++ {
			v.PushBack(j)
		}
		for j := 0; j < 64; j++ {
			v.Insert(0, j)
		}
		for !v.IsEmpty() {
			v.Erase(0)
		}
		w := simplevector.NewWithCapacity[int](576)
		for j := 0; j < 576; j++ {
			w.PushBack(j)
		}
		_ = w.Clone()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
