package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Notes *services.NoteService
}

func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{Notes: notes}
}

func (nc *NoteController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	notes, err := nc.Notes.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (nc *NoteController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := nc.Notes.Add(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (nc *NoteController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := nc.Notes.Delete(uid, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
