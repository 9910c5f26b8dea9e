package server

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ContentTypeBinary = "application/octet-stream"
	ContentTypeText   = "text/plain; charset=utf-8"
)

type handlers struct {
	maxBodySize int64
}

// encoder picks the encoder named by the "encoding" query parameter
func encoder(w http.ResponseWriter, r *http.Request) (enc.Encoder, bool) {
	e, err := enc.Find(r.URL.Query().Get("encoding"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return e, true
}

// body reads at most maxBodySize bytes of the request. One byte more tells an oversized body apart from other
// read failures.
func (h *handlers) body(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := ioutil.ReadAll(io.LimitReader(r.Body, h.maxBodySize+1))
	if err != nil {
		log.WithError(err).Debugf("[%v] Could not read request: %v", middleware.GetReqID(r.Context()), err)
		http.Error(w, errors.Wrapf(err, "Could not read request").Error(), http.StatusBadRequest)
		return nil, false
	}
	if int64(len(data)) > h.maxBodySize {
		log.Debugf("[%v] Request body over %d bytes", middleware.GetReqID(r.Context()), h.maxBodySize)
		http.Error(w, fmt.Sprintf("Request body is larger than %d bytes", h.maxBodySize), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return data, true
}

func reply(w http.ResponseWriter, e enc.Encoder, data []byte) {
	w.Header().Set("Content-Type", ContentTypeBinary)
	w.Header().Set("X-Encoding", e.Name())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

func (h *handlers) encode(w http.ResponseWriter, r *http.Request) {
	e, ok := encoder(w, r)
	if !ok {
		return
	}
	data, ok := h.body(w, r)
	if !ok {
		return
	}
	reply(w, e, e.Encode(data))
}

func (h *handlers) decode(w http.ResponseWriter, r *http.Request) {
	e, ok := encoder(w, r)
	if !ok {
		return
	}
	data, ok := h.body(w, r)
	if !ok {
		return
	}
	decoded, err := e.Decode(data)
	if err != nil {
		err = errors.Wrapf(err, "Invalid %v input", e.Name())
		log.WithError(err).Debugf("[%v] %v", middleware.GetReqID(r.Context()), err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	reply(w, e, decoded)
}

//noinspection GoUnusedParameter
func (h *handlers) encodings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentTypeText)
	for _, e := range enc.Encoders {
		if _, err := fmt.Fprintf(w, "%s %c %.4f\n", e.Name(), e.Code(), e.Ratio()); err != nil {
			log.WithError(err).Debugf("Could not write response: %v", err)
			return
		}
	}
}
