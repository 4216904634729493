package web

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"sync"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"

	"github.com/gfxblit/EastVsWest/compose"
	"github.com/gfxblit/EastVsWest/shadow"
	"github.com/gfxblit/EastVsWest/sheet"
)

type Handler struct {
	renderLock sync.Mutex
	sheetPNG   []byte
	shadowPNG  []byte
}

// NewHandler constructs a web handler serving the placeholder art. All
// images are rendered on demand from compiled-in constants and cached
// for the life of the process.
func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) renderSheet() ([]byte, error) {
	h.renderLock.Lock()
	defer h.renderLock.Unlock()

	if h.sheetPNG == nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, sheet.Generate()); err != nil {
			return nil, err
		}
		h.sheetPNG = buf.Bytes()
	}
	return h.sheetPNG, nil
}

func (h *Handler) renderShadow() ([]byte, error) {
	h.renderLock.Lock()
	defer h.renderLock.Unlock()

	if h.shadowPNG == nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, shadow.Generate()); err != nil {
			return nil, err
		}
		h.shadowPNG = buf.Bytes()
	}
	return h.shadowPNG, nil
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"sheet:%d:%dx%d:%s"`, generation, sheet.Width, sheet.Height, mime)

	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body, err := h.renderSheet()
	if err != nil {
		glog.Errorf("error rendering sheet: %v", err)
		http.Error(w, "image could not be generated", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) shadowHandler(w http.ResponseWriter, r *http.Request) {
	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"shadow:%d:%dx%d:%s"`, generation, shadow.Size, shadow.Size, mime)

	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body, err := h.renderShadow()
	if err != nil {
		glog.Errorf("error rendering shadow: %v", err)
		http.Error(w, "image could not be generated", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) cellHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	row, err := strconv.Atoi(vars["row"])
	if err != nil {
		http.Error(w, "row not a number", http.StatusBadRequest)
		return
	}
	col, err := strconv.Atoi(vars["col"])
	if err != nil {
		http.Error(w, "col not a number", http.StatusBadRequest)
		return
	}
	if _, err := sheet.DirectionByRow(row); err != nil || col < 0 || col >= sheet.Columns {
		http.Error(w, "no such cell", http.StatusBadRequest)
		return
	}

	scale := 1
	if s := r.URL.Query().Get("scale"); s != "" {
		scale, _ = strconv.Atoi(s)
		// ignore invalid scale
	}
	if scale < 1 {
		scale = 1
	}
	if scale > 8 {
		scale = 8
	}

	withShadow := false
	if s := r.URL.Query().Get("shadow"); s == "1" || s == "true" {
		withShadow = true
	}

	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"cell:%d:%d-%d:%d:%t:%s"`, generation, row, col, scale, withShadow, mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	var img *image.NRGBA
	if withShadow {
		img = compose.Cell(row, col)
	} else {
		img = image.NewNRGBA(image.Rect(0, 0, sheet.FrameWidth, sheet.FrameHeight))
		sheet.DrawFrame(img, image.Point{}, row, col)
	}

	var out image.Image = img
	if scale != 1 {
		// Nearest neighbor keeps the placeholder's hard pixel edges.
		out = resize.Resize(uint(sheet.FrameWidth*scale), uint(sheet.FrameHeight*scale), img, resize.NearestNeighbor)
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, out)
}

func (h *Handler) walkGIFHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	row, err := strconv.Atoi(vars["row"])
	if err != nil {
		http.Error(w, "row not a number", http.StatusBadRequest)
		return
	}
	if _, err := sheet.DirectionByRow(row); err != nil {
		http.Error(w, "no such direction", http.StatusBadRequest)
		return
	}

	delayCS := 12
	if d := r.URL.Query().Get("delay_cs"); d != "" {
		delayCS, _ = strconv.Atoi(d)
		// ignore invalid delay_cs
	}
	if delayCS < 2 {
		delayCS = 2
	}
	if delayCS > 100 {
		delayCS = 100
	}

	generation := 1 // bump if the way we generate it changes
	mime := "image/gif"
	etag := fmt.Sprintf(`W/"walk:%d:%d:%d:%s"`, generation, row, delayCS, mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	var buf bytes.Buffer
	if err := sheet.EncodeWalkGIF(&buf, row, delayCS); err != nil {
		glog.Errorf("error rendering walk gif: %v", err)
		http.Error(w, "image could not be generated", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/sheet.png", h.sheetHandler)
	r.HandleFunc("/shadow.png", h.shadowHandler)
	r.HandleFunc("/cell/{row:[0-9]+}-{col:[0-9]+}.png", h.cellHandler)
	r.HandleFunc("/walk/{row:[0-9]+}.gif", h.walkGIFHandler)
}
