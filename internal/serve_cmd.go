package spacefill

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/spacefill/spacefill/internal/cache"
	"github.com/spacefill/spacefill/internal/core"
)

func DoServe(ctx context.Context, port uint, memcachedAddr string) {
	if memcachedAddr != "" {
		core.InitCache(cache.NewMemcachedCache(memcachedAddr))
		log.Printf("using memcached at %s", memcachedAddr)
	}

	router := httprouter.New()

	for _, id := range core.ListRoutes() {
		if route, found := core.GetRoute(id); found {
			router.Handle(route.Method, route.Path, route.Handler)
		}
	}

	log.Printf("ready serve http://localhost:%d", port)
	log.Fatal(http.ListenAndServe(":"+strconv.Itoa(int(port)), router))
}
