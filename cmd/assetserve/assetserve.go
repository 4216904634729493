// Command assetserve serves the generated placeholder art over HTTP so
// it can be eyeballed in a browser while iterating on the generators.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	_ "golang.org/x/net/trace"

	"github.com/common-nighthawk/go-figure"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/gfxblit/EastVsWest/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for assetserve")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server will listen")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	figure.NewFigure("EastVsWest", "", true).Print()

	if *debugWebServer != "" {
		http.HandleFunc("/debug/minimetrics", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "runtime.NumGoroutine(): %d\n", runtime.NumGoroutine())
		})
		go http.ListenAndServe(*debugWebServer, nil)
	}

	r := mux.NewRouter()
	web.NewHandler().RegisterRoutes(r)

	glog.Infof("assetserve listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stdout, r)))
}
