package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
	"github.com/YoDarkol23/Absolute-Service/internal/router"
	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
)

// entityKey is the JSON key the entity appears under in admin
// responses ("car", "city", "document").
func entityKey(kind entity.Kind) string {
	return string(kind)
}

// adminStatus builds the common admin response envelope.
func adminStatus(message string) map[string]any {
	return map[string]any{"status": "success", "message": message}
}

// handleAdminList returns the raw collection for kind, using the
// wrapped shape for documents.
func (a *API) handleAdminList(kind entity.Kind) router.HandlerFunc {
	return func(_ *httpx.Request) httpx.Response {
		return httpx.JSON(http.StatusOK, recordsOrEmpty(a.store.List(kind)))
	}
}

// handleAdminListDocuments serves GET /admin/documents.
func (a *API) handleAdminListDocuments(_ *httpx.Request) httpx.Response {
	return httpx.JSON(http.StatusOK, map[string]any{
		"documents": recordsOrEmpty(a.store.List(entity.KindDocument)),
	})
}

// handleAdminCreate serves POST /admin/<kind>s. The body is the new
// entity without an id; the store assigns one.
func (a *API) handleAdminCreate(kind entity.Kind) router.HandlerFunc {
	return func(req *httpx.Request) httpx.Response {
		rec, resp := decodeRecord(req)
		if resp != nil {
			return *resp
		}

		created, err := a.store.Insert(kind, rec)
		if err != nil {
			return a.respondError(err)
		}

		a.log.Info("entity created", "kind", kind, "id", created.ID())
		body := adminStatus(fmt.Sprintf("%s added successfully", kind.Label()))
		body[entityKey(kind)] = created
		return httpx.JSON(http.StatusCreated, body)
	}
}

// handleAdminUpdate serves PUT /admin/<kind>s/{id}: a partial merge of
// the body fields into the stored entity. The id never changes.
func (a *API) handleAdminUpdate(kind entity.Kind) router.IDHandlerFunc {
	return func(req *httpx.Request, id int) httpx.Response {
		rec, resp := decodeRecord(req)
		if resp != nil {
			return *resp
		}

		updated, err := a.store.Update(kind, id, rec)
		if err != nil {
			return a.respondError(err)
		}

		a.log.Info("entity updated", "kind", kind, "id", id)
		body := adminStatus(fmt.Sprintf("%s updated successfully", kind.Label()))
		body[entityKey(kind)] = updated
		return httpx.JSON(http.StatusOK, body)
	}
}

// handleAdminDelete serves DELETE /admin/<kind>s/{id}.
func (a *API) handleAdminDelete(kind entity.Kind) router.IDHandlerFunc {
	return func(_ *httpx.Request, id int) httpx.Response {
		if err := a.store.Delete(kind, id); err != nil {
			return a.respondError(err)
		}
		a.log.Info("entity deleted", "kind", kind, "id", id)
		return httpx.JSON(http.StatusOK, adminStatus(fmt.Sprintf("%s deleted successfully", kind.Label())))
	}
}

// handleAdminDeleteDocument serves DELETE /admin/documents. The id
// travels in the body rather than the path.
func (a *API) handleAdminDeleteDocument(req *httpx.Request) httpx.Response {
	var body struct {
		ID int `json:"id"`
	}
	if len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &body); err != nil {
			return httpx.Error(http.StatusBadRequest, "Invalid JSON in request body")
		}
	}
	if body.ID == 0 {
		return httpx.Error(http.StatusBadRequest, "Missing required field: id")
	}

	if err := a.store.Delete(entity.KindDocument, body.ID); err != nil {
		return a.respondError(err)
	}
	a.log.Info("entity deleted", "kind", entity.KindDocument, "id", body.ID)
	return httpx.JSON(http.StatusOK, adminStatus("Document deleted successfully"))
}

// decodeRecord parses the request body as an entity record. The id
// field is stripped: ids are store-assigned on create and immutable on
// update.
func decodeRecord(req *httpx.Request) (entity.Record, *httpx.Response) {
	if len(req.Body) == 0 {
		resp := httpx.Error(http.StatusBadRequest, errMsgEmptyBody)
		return nil, &resp
	}
	var rec entity.Record
	if err := json.Unmarshal(req.Body, &rec); err != nil {
		resp := httpx.Error(http.StatusBadRequest, "Invalid JSON in request body")
		return nil, &resp
	}
	delete(rec, "id")
	return rec, nil
}
