package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"miyako/db"
	"miyako/globals"
	"miyako/models"
	"miyako/mq"
	"miyako/rdx"
	"miyako/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	attractionsCacheKey = "catalog:attractions"
	categoriesCacheKey  = "catalog:categories"
)

// GET /api/catalog/attractions
func GetAttractions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categoryID := r.URL.Query().Get("category")

	// Only the unfiltered list is cached.
	if categoryID == "" {
		if cached, _ := rdx.RdxGet(attractionsCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	filter := bson.M{"deletedAt": bson.M{"$exists": false}}
	if categoryID != "" {
		filter["categoryid"] = categoryID
	}

	attractions, err := utils.FindAndDecode[models.Attraction](ctx, db.AttractionsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch attractions")
		return
	}

	data := utils.ToJSON(utils.M{"data": attractions})
	if categoryID == "" {
		rdx.RdxSet(attractionsCacheKey, string(data))
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GET /api/catalog/attractions/:attractionid
func GetAttraction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var attraction models.Attraction
	err := db.AttractionsCollection.FindOne(ctx, bson.M{"attractionid": ps.ByName("attractionid")}).Decode(&attraction)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Attraction not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"data": attraction})
}

// GET /api/catalog/categories
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if cached, _ := rdx.RdxGet(categoriesCacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	categories, err := utils.FindAndDecode[models.Category](ctx, db.CategoriesCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	data := utils.ToJSON(utils.M{"data": categories})
	rdx.RdxSet(categoriesCacheKey, string(data))
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// POST /api/catalog/attractions
func CreateAttraction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var attraction models.Attraction
	if err := json.NewDecoder(r.Body).Decode(&attraction); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	attraction.AttractionID = utils.GenerateRandomString(13)
	attraction.CreatedBy = userID
	attraction.CreatedAt = time.Now()
	attraction.UpdatedAt = attraction.CreatedAt

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.AttractionsCollection.InsertOne(ctx, attraction); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting attraction")
		return
	}

	invalidateCache()
	mq.Emit(ctx, mq.Event{EntityType: "attraction", Method: "POST", EntityID: attraction.AttractionID})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"data": attraction})
}

// PUT /api/catalog/attractions/:attractionid
func EditAttraction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	attractionID := ps.ByName("attractionid")

	var updated models.Attraction
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"categoryid":     updated.CategoryID,
		"name":           updated.Name,
		"description":    updated.Description,
		"address":        updated.Address,
		"location":       updated.Location,
		"images":         updated.Images,
		"video_url":      updated.VideoURL,
		"avg_spend_time": updated.AvgSpendTime,
		"buses":          updated.Buses,
		"updated_at":     time.Now(),
	}}

	result, err := db.AttractionsCollection.UpdateOne(ctx, bson.M{"attractionid": attractionID}, update)
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

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Attraction updated successfully"})
}

// DELETE /api/catalog/attractions/:attractionid
func DeleteAttraction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	attractionID := ps.ByName("attractionid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	now := time.Now()
	result, err := db.AttractionsCollection.UpdateOne(ctx,
		bson.M{"attractionid": attractionID},
		bson.M{"$set": bson.M{"deletedAt": now}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting attraction")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Attraction not found")
		return
	}

	invalidateCache()
	mq.Emit(ctx, mq.Event{EntityType: "attraction", Method: "DELETE", EntityID: attractionID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Attraction deleted successfully"})
}

func invalidateCache() {
	rdx.RdxDel(attractionsCacheKey)
	rdx.RdxDel(categoriesCacheKey)
}
