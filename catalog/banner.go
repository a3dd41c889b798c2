package catalog

import (
	"context"
	"net/http"
	"time"

	"miyako/db"
	"miyako/filemgr"
	"miyako/mq"
	"miyako/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// PUT /api/catalog/attractions/:attractionid/banner
func EditAttractionBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	attractionID := ps.ByName("attractionid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	bannerPath, err := filemgr.SaveAttractionBanner(r, attractionID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.AttractionsCollection.UpdateOne(ctx,
		bson.M{"attractionid": attractionID},
		bson.M{"$set": bson.M{"banner": bannerPath, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating attraction")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Attraction not found")
		return
	}

	invalidateCache()
	mq.Emit(ctx, mq.Event{EntityType: "attraction", Method: "PUT", EntityID: attractionID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"banner": bannerPath})
}
