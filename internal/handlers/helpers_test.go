package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	jwtutil "github.com/Dias221467/Wellness_Tracker/pkg/jwt"
	"github.com/Dias221467/Wellness_Tracker/pkg/middleware"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testUserID = primitive.NewObjectID()

// authedRequest builds a request that has already passed AuthMiddleware.
func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	claims := &jwtutil.Claims{UserID: testUserID.Hex(), Email: "ann@example.com", Role: "user"}
	return req.WithContext(middleware.WithUser(req.Context(), claims))
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}
