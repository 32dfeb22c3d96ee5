package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/rawmem"
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

	src := make([]uint64, 1<<16)
	for i := range src {
		src[i] = uint64(i)
	}
	dst := make([]uint64, 1<<16)

	sr := rawmem.RegionOf(src)
	dr := rawmem.MutRegionOf(dst)
	for i := 0; i < 10000; i++ {
		dr.CopyNonoverlapping(sr)
		dr.Copy(dr.Const().SliceFrom(1))
		dr.SliceTo(1 << 8).WriteBytes(0)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
